package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{domain.ErrPermissionDenied, http.StatusForbidden, "Permission denied"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrPatientNotFound, http.StatusNotFound, "Patient not found"},
		{domain.ErrUserExists, http.StatusBadRequest, "Email already registered"},
		{domain.ErrInvalidStatus, http.StatusBadRequest, "Invalid status value"},
		{domain.ErrInvalidUpload, http.StatusBadRequest, "Invalid upload"},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.message) {
			t.Fatalf("%v: expected %q in body, got %s", tc.err, tc.message, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("pq: connection refused to 10.1.2.3"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.1.2.3") {
		t.Fatalf("internal details leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Internal server error") {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_ModelFailureIsGeneric(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/dental/analyze", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(domain.ErrModelUnavailable, c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal server error") {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusBadRequest, "No image provided"), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No image provided") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
