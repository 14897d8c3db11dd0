package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSessionHandler_GetVisited_NoCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session/visited", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewSessionHandler().GetVisited(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["visited"] {
		t.Error("fresh session should not be visited")
	}
}

func TestSessionHandler_GetVisited_WithCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session/visited", nil)
	req.AddCookie(&http.Cookie{Name: visitedCookie, Value: "true"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewSessionHandler().GetVisited(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]bool
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp["visited"] {
		t.Error("session with cookie should be visited")
	}
}

func TestSessionHandler_MarkVisited_SetsSessionCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/session/visited", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewSessionHandler().MarkVisited(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != visitedCookie || ck.Value != "true" {
		t.Errorf("cookie = %s=%s", ck.Name, ck.Value)
	}
	if ck.MaxAge != 0 {
		t.Errorf("max-age = %d; the flag must die with the browser session", ck.MaxAge)
	}
	if !ck.HttpOnly {
		t.Error("cookie should be http-only")
	}
}
