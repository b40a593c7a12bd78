package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/flowmap/internal/domain"
)

type fakeSource struct {
	docs domain.SourceDocs
	err  error
}

func (f *fakeSource) LoadDocuments(domain.ProjectRef) (domain.SourceDocs, error) {
	return f.docs, f.err
}

type fakeStore struct {
	saved string
	path  string
	err   error
}

func (f *fakeStore) SaveFlows(_ domain.ProjectRef, content string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = content
	return f.path, nil
}

func fixedNow() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestGenerateFlows_EndToEnd(t *testing.T) {
	src := &fakeSource{docs: domain.SourceDocs{
		Requirements: "As a user, I want to view the dashboard screen, So that I can check my stats.",
		Design:       "Dashboard Screen → Settings Screen",
	}}
	store := &fakeStore{path: "/ws/specs/demo/user-flows.md"}

	uc := NewGenerateFlows(src, store, WithNow(fixedNow))
	sum, err := uc.Execute(context.Background(), domain.ProjectRef{Name: "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Stories != 1 || sum.Flows != 1 {
		t.Errorf("unexpected summary counts: %+v", sum)
	}
	if sum.OutputPath != store.path {
		t.Errorf("expected output path %q, got %q", store.path, sum.OutputPath)
	}

	out := store.saved
	if !strings.Contains(out, "**US001**: As a user, I want to view the dashboard screen, so that I can check my stats.") {
		t.Errorf("expected story line, got:\n%s", out)
	}
	if !strings.Contains(out, "**Dashboard Screen**") || !strings.Contains(out, "**Settings Screen**") {
		t.Errorf("expected both flow endpoints in the inventory, got:\n%s", out)
	}
	if !strings.Contains(out, "| **Dashboard Screen** | ❌ | ❌ | ✅ |") {
		t.Errorf("expected present matrix cell for Dashboard -> Settings, got:\n%s", out)
	}
	if !strings.Contains(out, "**Generated**: 2024-01-02 03:04:05") {
		t.Errorf("expected injected timestamp, got:\n%s", out)
	}
}

func TestGenerateFlows_ReportsProgressPerStage(t *testing.T) {
	src := &fakeSource{docs: domain.SourceDocs{
		Requirements: "screen Login, for signing in.",
		Design:       "Login → Home Feed",
	}}
	store := &fakeStore{path: "/ws/specs/demo/user-flows.md"}

	var stages []string
	uc := NewGenerateFlows(src, store, WithNow(fixedNow), WithProgress(func(format string, args ...any) {
		stages = append(stages, fmt.Sprintf(format, args...))
	}))

	ref := domain.ProjectRef{
		Name:             "demo",
		RequirementsPath: "/ws/specs/demo/requirements.md",
		DesignPath:       "/ws/specs/demo/design.md",
	}
	if _, err := uc.Execute(context.Background(), ref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Read requirements.md and design.md",
		"Extracted 2 screens, 0 stories, 1 flows",
		"Wrote /ws/specs/demo/user-flows.md",
	}
	if len(stages) != len(want) {
		t.Fatalf("expected %d stage messages, got %v", len(want), stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("stage %d = %q, want %q", i, stages[i], want[i])
		}
	}
}

func TestGenerateFlows_NoWroteStageOnStoreError(t *testing.T) {
	src := &fakeSource{docs: domain.SourceDocs{Requirements: "screen Login, ok."}}
	store := &fakeStore{err: errors.New("disk full")}

	var stages []string
	uc := NewGenerateFlows(src, store, WithProgress(func(format string, args ...any) {
		stages = append(stages, fmt.Sprintf(format, args...))
	}))

	if _, err := uc.Execute(context.Background(), domain.ProjectRef{Name: "demo"}); err == nil {
		t.Fatal("expected store error")
	}
	for _, s := range stages {
		if strings.HasPrefix(s, "Wrote") {
			t.Errorf("unexpected write stage after store failure: %q", s)
		}
	}
}

func TestGenerateFlows_EmptyDocuments(t *testing.T) {
	src := &fakeSource{docs: domain.SourceDocs{}}
	store := &fakeStore{path: "/ws/specs/empty/user-flows.md"}

	uc := NewGenerateFlows(src, store, WithNow(fixedNow))
	sum, err := uc.Execute(context.Background(), domain.ProjectRef{Name: "empty"})
	if err != nil {
		t.Fatalf("expected empty inputs to succeed, got %v", err)
	}

	if sum.Screens != 0 || sum.Stories != 0 || sum.Flows != 0 {
		t.Errorf("expected zero counts, got %+v", sum)
	}
	if !strings.Contains(store.saved, "**Total Screens**: 0") {
		t.Errorf("expected zero-screen document, got:\n%s", store.saved)
	}
}

func TestGenerateFlows_SourceErrorAbortsBeforeWrite(t *testing.T) {
	src := &fakeSource{err: &domain.OpError{Op: "textsource.load", Kind: domain.KindNotFound}}
	store := &fakeStore{path: "/ws/specs/demo/user-flows.md"}

	uc := NewGenerateFlows(src, store)
	_, err := uc.Execute(context.Background(), domain.ProjectRef{Name: "demo"})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if store.saved != "" {
		t.Errorf("expected nothing written on load failure")
	}
}

func TestGenerateFlows_StoreErrorPropagates(t *testing.T) {
	src := &fakeSource{docs: domain.SourceDocs{Requirements: "screen Home, done."}}
	store := &fakeStore{err: errors.New("disk full")}

	uc := NewGenerateFlows(src, store)
	_, err := uc.Execute(context.Background(), domain.ProjectRef{Name: "demo"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestGenerateFlows_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewGenerateFlows(&fakeSource{}, &fakeStore{})
	_, err := uc.Execute(ctx, domain.ProjectRef{Name: "demo"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateFlows_FlowEndpointsJoinScreenSet(t *testing.T) {
	src := &fakeSource{docs: domain.SourceDocs{
		Requirements: "screen Login, for signing in.",
		Design:       "Login → Home Feed",
	}}
	store := &fakeStore{path: "out.md"}

	uc := NewGenerateFlows(src, store, WithNow(fixedNow))
	sum, err := uc.Execute(context.Background(), domain.ProjectRef{Name: "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Login from requirements plus Home Feed from the flow endpoint.
	if sum.Screens != 2 {
		t.Errorf("expected 2 screens, got %d", sum.Screens)
	}
	if !strings.Contains(store.saved, "S1 --> S2") {
		t.Errorf("expected diagram edge, got:\n%s", store.saved)
	}
}
