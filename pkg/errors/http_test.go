package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAsHTTPError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		httpErr, ok := AsHTTPError(NewHTTPError(http.StatusConflict, "conflict"))
		if !ok {
			t.Fatal("expected HTTPError")
		}
		if httpErr.StatusCode != http.StatusConflict || httpErr.Code != http.StatusConflict {
			t.Errorf("unexpected status/code: %d/%d", httpErr.StatusCode, httpErr.Code)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", ErrNotFound)
		httpErr, ok := AsHTTPError(wrapped)
		if !ok || httpErr.StatusCode != http.StatusNotFound {
			t.Fatalf("expected wrapped 404, got %v", httpErr)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		if _, ok := AsHTTPError(fmt.Errorf("plain")); ok {
			t.Fatal("plain error must not be reported as HTTPError")
		}
	})
}
