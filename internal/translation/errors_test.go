package translation

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := newError("deepl", "status %d", 403)
	if err.Error() != "deepl translation failed: status 403" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrapError("gemini", cause)

	if !errors.Is(err, cause) {
		t.Fatal("wrapped error should unwrap to its cause")
	}
	if !IsProviderError(fmt.Errorf("outer: %w", err)) {
		t.Fatal("IsProviderError should see through wrapping")
	}
	if wrapError("gemini", nil) != nil {
		t.Fatal("wrapping nil should stay nil")
	}
}
