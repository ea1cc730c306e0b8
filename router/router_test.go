// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/flashpoll/models"
	"github.com/danielhkuo/flashpoll/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected OK body, got %q", w.Body.String())
	}
}

// Full round trip through the mux: the path parameters must reach the
// handlers via the route patterns.
func TestRoutedCreateTakeSubmit(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/polls", models.CreatePollRequest{
		Title:     "Routed",
		Questions: []models.QuestionInput{{Type: models.QuestionText, Prompt: "Q"}},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var created models.CreatePollResponse
	testutil.AssertJSON(t, w, &created)

	// Taking page by poll key
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/p/"+created.PollKey, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Routed") {
		t.Error("Taking page is missing the poll title")
	}

	// JSON view by poll key
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/polls/"+created.PollKey, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Submit through the routed path
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/polls/"+created.PollKey+"/responses", models.SubmitResponseRequest{
		ResponderID: "alice",
		Answers:     models.AnswerSet{"0": testutil.RawAnswer(t, "hello")},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Creator dashboard page by creator key
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/c/"+created.CreatorKey, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "alice") {
		t.Error("Creator page is missing the response")
	}
}

func TestRoutedAdminListing(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.SetupTestStore(t), cfg)

	// Without the token
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/polls", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// With the token
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/admin/polls", nil, map[string]string{
		"X-Admin-Token": cfg.AdminToken,
	}))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestRoutedLanding(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/no-such-page", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/polls", nil))
	testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
}
