package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func contextWithUser(c echo.Context, userID int64, role string) {
	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	c.SetRequest(c.Request().WithContext(ctx))
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	contextWithUser(c, 1, "doctor")

	called := false
	mw := RequireRole("doctor")
	err := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})(c)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
}

func TestRequireRole_AdminOverride(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	contextWithUser(c, 1, "admin")

	mw := RequireRole("doctor")
	err := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)

	if err != nil {
		t.Fatalf("expected admin to pass role check, got %v", err)
	}
}

func TestRequireRole_Denies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	contextWithUser(c, 1, "patient")

	mw := RequireRole("admin")
	err := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", httpErr.Code)
	}
}

func TestRequireSelf(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name      string
		userID    int64
		role      string
		subjectID int64
		wantErr   bool
	}{
		{"self", 7, "patient", 7, false},
		{"other user", 7, "patient", 8, true},
		{"admin override", 1, "admin", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			contextWithUser(c, tt.userID, tt.role)

			err := RequireSelf(c, tt.subjectID)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
