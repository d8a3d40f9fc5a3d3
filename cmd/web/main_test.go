package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPageHandler(t *testing.T) {
	h := pageHandler("snake.example.com")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "ssh -t -p 2222 snake.example.com") {
		t.Error("Expected SSH host in page")
	}
	if strings.Contains(body, "{{.SSHHost}}") {
		t.Error("Expected placeholder to be replaced")
	}
}

func TestPageHandlerUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	pageHandler("host").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}
