package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "locator.resolve",
		Kind: KindNotFound,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}
}

func TestOpErrorMessageIncludesPath(t *testing.T) {
	err := &OpError{
		Op:   "textsource.load",
		Kind: KindNotFound,
		Path: "/ws/specs/demo/requirements.md",
		Err:  ErrNotFound,
	}

	msg := err.Error()
	if !strings.Contains(msg, "textsource.load") {
		t.Errorf("expected op in message, got %q", msg)
	}
	if !strings.Contains(msg, "/ws/specs/demo/requirements.md") {
		t.Errorf("expected path in message, got %q", msg)
	}
}

func TestOpErrorMatchesSentinelByKind(t *testing.T) {
	cases := []struct {
		kind     ErrorKind
		sentinel error
	}{
		{KindNotFound, ErrNotFound},
		{KindInvalidConfig, ErrInvalidConfig},
		{KindExecution, ErrExecution},
	}

	for _, c := range cases {
		err := &OpError{Op: "x", Kind: c.kind, Err: errors.New("cause")}
		if !errors.Is(err, c.sentinel) {
			t.Errorf("kind %s: expected errors.Is to match %v", c.kind, c.sentinel)
		}
		for _, other := range cases {
			if other.kind == c.kind {
				continue
			}
			if errors.Is(err, other.sentinel) {
				t.Errorf("kind %s: unexpected match against %v", c.kind, other.sentinel)
			}
		}
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindInvalidConfig}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject different kind")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("expected IsKind to reject non-OpError")
	}
}
