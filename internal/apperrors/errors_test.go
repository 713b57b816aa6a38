package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := NotFound("no posting with id \"x\"", nil)

	if KindOf(err) != KindNotFound {
		t.Fatalf("KindOf = %q, want %q", KindOf(err), KindNotFound)
	}

	wrapped := fmt.Errorf("query failed: %w", err)
	if !IsKind(wrapped, KindNotFound) {
		t.Fatalf("kind should survive wrapping")
	}

	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("foreign errors must have no kind")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := FetchFailed("job document fetch failed", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain")
	}
	if err.StackTrace() == nil {
		t.Fatalf("expected captured stack")
	}
}
