// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "something broke")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["error"] != "something broke" {
		t.Errorf("Unexpected error message: %q", body["error"])
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"Lunch"}`))

	var payload struct {
		Title string `json:"title"`
	}
	if err := ParseJSONBody(req, &payload); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if payload.Title != "Lunch" {
		t.Errorf("Expected title Lunch, got %q", payload.Title)
	}

	bad := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	if err := ParseJSONBody(bad, &payload); err == nil {
		t.Error("Expected error for malformed JSON, got nil")
	}
}

func TestRequireAdminToken(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{name: "no token configured disables endpoint", configured: "", header: "anything", wantStatus: http.StatusNotFound},
		{name: "missing header", configured: "secret", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", configured: "secret", header: "wrong", wantStatus: http.StatusUnauthorized},
		{name: "correct token", configured: "secret", header: "secret", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/polls", nil)
			if tt.header != "" {
				req.Header.Set("X-Admin-Token", tt.header)
			}
			w := httptest.NewRecorder()

			RequireAdminToken(tt.configured, next)(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWithLogging(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/test", nil))

	if !called {
		t.Error("Wrapped handler was not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status passthrough, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the wrapped handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/polls", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("Expected allowed methods header")
	}
}
