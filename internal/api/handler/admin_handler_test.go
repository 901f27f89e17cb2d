package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

func TestAdminHandler_UsersByStatus_Default(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		usersByStatusFn: func(_ context.Context, status domain.Status) ([]*domain.User, error) {
			if status != domain.StatusInProcess {
				t.Fatalf("expected default inProcess, got %s", status)
			}
			return []*domain.User{{ID: 1, Name: "Pending", Status: status}}, nil
		},
	}
	h := NewAdminHandler(stub, &stubProcessingLog{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.UsersByStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_UsersByStatus_Invalid(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		usersByStatusFn: func(context.Context, domain.Status) ([]*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAdminHandler(stub, &stubProcessingLog{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users?status=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.UsersByStatus(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_UpdateUserStatus(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		updateStatusFn: func(_ context.Context, userID int64, status domain.Status, actor string) error {
			if userID != 42 || status != domain.StatusApproved || actor != "admin@example.com" {
				t.Fatalf("unexpected args: %d %s %s", userID, status, actor)
			}
			return nil
		},
	}
	h := NewAdminHandler(stub, &stubProcessingLog{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/42/status", strings.NewReader(`{"status":"approved"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	c.Set("email", "admin@example.com")

	if err := h.UpdateUserStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_UpdateUserStatus_RejectsActive(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		updateStatusFn: func(context.Context, int64, domain.Status, string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAdminHandler(stub, &stubProcessingLog{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/42/status", strings.NewReader(`{"status":"active"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	c.Set("email", "admin@example.com")

	if err := h.UpdateUserStatus(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_ProcessingLogs(t *testing.T) {
	e := echo.New()
	plog := &stubProcessingLog{entries: []domain.ProcessingEntry{
		{ID: 1, UserEmail: "doc@example.com", Action: "enhance"},
	}}
	h := NewAdminHandler(&stubAuthService{}, plog, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/logs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ProcessingLogs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	logs, ok := resp["logs"].([]any)
	if !ok || len(logs) != 1 {
		t.Fatalf("expected one log entry, got %+v", resp)
	}
}

func TestAdminHandler_AdminData(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		adminDataFn: func(context.Context) (*ports.AdminData, error) {
			return &ports.AdminData{
				Users: []*domain.User{{ID: 1, Name: "Approved"}},
				Logs:  []*domain.ActivityLog{{ID: 1, Action: domain.ActionLogin}},
			}, nil
		},
	}
	h := NewAdminHandler(stub, &stubProcessingLog{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/admin-data", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AdminData(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["users"]; !ok {
		t.Fatalf("expected users in response")
	}
	if _, ok := resp["activity_logs"]; !ok {
		t.Fatalf("expected activity_logs in response")
	}
}
