package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("ddb down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "An internal error occurred: ddb down" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	body := e.ToHTTPError()
	if body.Success || body.Code != "INTERNAL_ERROR" || body.Error != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", 0)
	if simple.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", simple.HTTPStatus)
	}
	if simple.Error() != "Invalid request" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}
