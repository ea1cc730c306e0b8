// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/flashpoll/cliparse"
	"github.com/danielhkuo/flashpoll/db"
	"github.com/danielhkuo/flashpoll/keys"
	"github.com/danielhkuo/flashpoll/models"
)

// SetupTestStore opens a fresh sqlite database in a per-test temp dir with
// the full schema applied.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3322,
		DatabaseType: "sqlite",
		DatabaseURL:  "file:test.db",
		BaseURL:      "http://localhost:3322",
		AdminToken:   "test-admin-token",
	}
}

// CreateTestPoll inserts a poll with the given questions directly into the
// store and returns it. ttl may be negative to create an already-expired
// poll.
func CreateTestPoll(t *testing.T, store *db.Store, title string, questions []models.Question, ttl time.Duration) models.Poll {
	t.Helper()

	pollKey, err := keys.Generate()
	if err != nil {
		t.Fatalf("Failed to generate poll key: %v", err)
	}
	creatorKey, err := keys.Generate()
	if err != nil {
		t.Fatalf("Failed to generate creator key: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	poll := models.Poll{
		ID:         uuid.NewString(),
		PollKey:    pollKey,
		CreatorKey: creatorKey,
		Title:      title,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	if err := store.CreatePoll(context.Background(), poll, questions); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return poll
}

// InsertTestResponse records a response for the poll
func InsertTestResponse(t *testing.T, store *db.Store, pollID, responderID string, answers models.AnswerSet) {
	t.Helper()

	submittedAt := time.Now().UTC().Truncate(time.Second)
	if err := store.InsertResponse(context.Background(), pollID, responderID, submittedAt, answers); err != nil {
		t.Fatalf("Failed to insert test response: %v", err)
	}
}

// RawAnswer marshals a value into the raw JSON form stored in an AnswerSet
func RawAnswer(t *testing.T, v any) json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal answer: %v", err)
	}
	return raw
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
