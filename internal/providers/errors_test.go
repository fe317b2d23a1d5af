package providers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{
		Provider:   "youtube",
		StatusCode: http.StatusForbidden,
		Message:    "quota exceeded",
	}
	if got := err.Error(); got != "youtube: quota exceeded (status=403)" {
		t.Fatalf("unexpected error string %q", got)
	}

	se, ok := AsStatusError(fmt.Errorf("search: %w", err))
	if !ok || se.StatusCode != http.StatusForbidden {
		t.Fatalf("expected to unwrap status error")
	}

	noStatus := &StatusError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestIsForbidden(t *testing.T) {
	if !IsForbidden(fmt.Errorf("wrapped: %w", &StatusError{StatusCode: http.StatusForbidden})) {
		t.Fatalf("expected wrapped 403 to be forbidden")
	}
	if IsForbidden(&StatusError{StatusCode: http.StatusInternalServerError}) {
		t.Fatalf("expected 500 not to be forbidden")
	}
	if IsForbidden(errors.New("boom")) || IsForbidden(nil) {
		t.Fatalf("expected plain errors not to be forbidden")
	}
}
