package report

import (
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/flowmap/internal/domain"
)

func sampleReport() Report {
	return Report{
		Project: "blood-pressure-tracking",
		Screens: screenSet("Dashboard Screen", "Settings Screen"),
		Stories: []domain.UserStory{
			{ID: "US001", Actor: "user", Action: "to view the dashboard screen", Benefit: "I can check my stats"},
		},
		Flows: []domain.NavigationFlow{
			{From: "Dashboard Screen", To: "Settings Screen", Type: domain.FlowNavigation},
		},
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRender_SectionOrder(t *testing.T) {
	out := sampleReport().Render()

	sections := []string{
		"## 1. Project Overview",
		"## 2. User Stories Summary",
		"## 3. Screen Navigation Map",
		"### 3.1 Visual Flow Diagram",
		"### 3.2 Screen Inventory",
		"### 3.3 Navigation Rules",
		"## 4. Screen Connection Analysis",
		"### Screen Connection Matrix",
		"### Missing Connections Analysis",
		"## 5. Data Flow Between Screens",
		"## 6. Implementation Guidelines",
		"## 7. Validation Checklist",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx == -1 {
			t.Fatalf("missing section %q in:\n%s", s, out)
		}
		if idx < last {
			t.Fatalf("section %q out of order", s)
		}
		last = idx
	}
}

func TestRender_Overview(t *testing.T) {
	out := sampleReport().Render()

	if !strings.Contains(out, "**Project**: Blood Pressure Tracking\n") {
		t.Errorf("expected dash-expanded project name, got:\n%s", out)
	}
	if !strings.Contains(out, "**Generated**: 2024-01-02 03:04:05\n") {
		t.Errorf("expected formatted timestamp, got:\n%s", out)
	}
	if !strings.Contains(out, "**Total Screens**: 2\n") {
		t.Errorf("expected screen count, got:\n%s", out)
	}
	if !strings.Contains(out, "**Total User Stories**: 1\n") {
		t.Errorf("expected story count, got:\n%s", out)
	}
	if !strings.Contains(out, "**Navigation Flows**: 1\n") {
		t.Errorf("expected flow count, got:\n%s", out)
	}
}

func TestRender_StoryLine(t *testing.T) {
	out := sampleReport().Render()

	want := "**US001**: As a user, I want to view the dashboard screen, so that I can check my stats.\n"
	if !strings.Contains(out, want) {
		t.Errorf("expected story line %q, got:\n%s", want, out)
	}
}

func TestRender_InventoryNumbering(t *testing.T) {
	out := sampleReport().Render()

	if !strings.Contains(out, "1. **Dashboard Screen**\n2. **Settings Screen**\n") {
		t.Errorf("expected numbered inventory in insertion order, got:\n%s", out)
	}
}

func TestRender_MatrixCellPresent(t *testing.T) {
	out := sampleReport().Render()

	if !strings.Contains(out, "| **Dashboard Screen** | ❌ | ✅ |") {
		t.Errorf("expected present matrix cell, got:\n%s", out)
	}
}

func TestRender_ForwardFlowListed(t *testing.T) {
	out := sampleReport().Render()

	if !strings.Contains(out, "- Dashboard Screen → Settings Screen\n") {
		t.Errorf("expected forward flow line, got:\n%s", out)
	}
}

func TestRender_DataFlowRow(t *testing.T) {
	out := sampleReport().Render()

	if !strings.Contains(out, "| Dashboard Screen | Settings Screen | Navigation State | Navigation Args |") {
		t.Errorf("expected data-flow row, got:\n%s", out)
	}
}

func TestRender_EmptyInputs(t *testing.T) {
	r := Report{
		Project:     "empty-project",
		Screens:     domain.NewScreenSet(),
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	out := r.Render()

	if strings.Contains(out, "## 2. User Stories Summary") {
		t.Errorf("expected no story section without stories, got:\n%s", out)
	}
	if !strings.Contains(out, "**Total Screens**: 0\n") {
		t.Errorf("expected zero screen count, got:\n%s", out)
	}
	if !strings.Contains(out, "✅ All expected connections are properly defined.") {
		t.Errorf("expected empty advisory marker, got:\n%s", out)
	}
	if !strings.Contains(out, "## 7. Validation Checklist") {
		t.Errorf("expected boilerplate even for empty inputs, got:\n%s", out)
	}
}

func TestRender_Deterministic(t *testing.T) {
	a := sampleReport().Render()
	b := sampleReport().Render()
	if a != b {
		t.Fatalf("expected identical renders for identical inputs")
	}
}

func TestForwardFlows_DropsBackwardTypes(t *testing.T) {
	flows := []domain.NavigationFlow{
		{From: "A Screen", To: "B Screen", Type: domain.FlowNavigation},
		{From: "B Screen", To: "A Screen", Type: domain.FlowType("back-navigation")},
	}

	fwd := forwardFlows(flows)
	if len(fwd) != 1 {
		t.Fatalf("expected 1 forward flow, got %d", len(fwd))
	}
	if fwd[0].From != "A Screen" {
		t.Errorf("unexpected flow kept: %+v", fwd[0])
	}
}
