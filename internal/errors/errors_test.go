package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", NotFound("user", "abc"), http.StatusNotFound},
		{"conflict", Conflict("email"), http.StatusConflict},
		{"validation", Validation("rating", "must be between 1 and 5"), http.StatusBadRequest},
		{"dependency", Dependency("failed to create user", errors.New("connection refused")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Errorf("%s: expected status %d, got %d", c.name, c.want, got)
		}
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("while handling request: %w", NotFound("review", "xyz"))
	if !IsNotFound(wrapped) {
		t.Error("Expected IsNotFound to match a wrapped NotFoundError")
	}
	if IsConflict(wrapped) {
		t.Error("Expected IsConflict not to match a NotFoundError")
	}
}

func TestDependencyErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Dependency("failed to create user", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected the dependency cause to be reachable via errors.Is")
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	if got := NotFound("user", "abc").Error(); got != "user not found with id: abc" {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := NotFound("users", "").Error(); got != "users not found" {
		t.Errorf("Unexpected message: %s", got)
	}
}
