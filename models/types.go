package models

import (
	"encoding/json"
	"time"
)

// Question type constants
const (
	QuestionText   = "text"
	QuestionSingle = "single"
	QuestionMulti  = "multi"
)

// ValidQuestionType reports whether t is one of the three question types.
func ValidQuestionType(t string) bool {
	switch t {
	case QuestionText, QuestionSingle, QuestionMulti:
		return true
	}
	return false
}

// AnswerSet maps a question index (as a decimal string, matching the JSON
// object keys takers submit) to an opaque answer value. Values are kept as
// raw JSON so the dashboard returns exactly what was submitted.
type AnswerSet map[string]json.RawMessage

// Request types

type QuestionInput struct {
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

type CreatePollRequest struct {
	Title     string          `json:"title"`
	Questions []QuestionInput `json:"questions"`
}

type SubmitResponseRequest struct {
	ResponderID string    `json:"responder_id"`
	Answers     AnswerSet `json:"answers"`
}

// Response types

type CreatePollResponse struct {
	CreatorURL string `json:"creator_url"`
	PollURL    string `json:"poll_url"`
	CreatorKey string `json:"creator_key"`
	PollKey    string `json:"poll_key"`
}

type SubmitResponseResponse struct {
	OK bool `json:"ok"`
}

type TakerView struct {
	PollKey   string     `json:"poll_key"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type DashboardView struct {
	PollKey   string     `json:"poll_key"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	Questions []Question `json:"questions"`
	Responses []Response `json:"responses"`
}

// PollSummary is what the admin listing exposes: metadata only, never
// responses.
type PollSummary struct {
	PollKey       string    `json:"poll_key"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	ResponseCount int       `json:"response_count"`
}

// Domain types

type Poll struct {
	ID         string    `json:"-"` // internal identity, never exposed
	PollKey    string    `json:"poll_key"`
	CreatorKey string    `json:"-"` // the creator's only credential, never exposed alongside the poll key
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type Question struct {
	Index   int      `json:"index"`
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"` // only for single/multi, nil otherwise
}

type Response struct {
	ResponderID string    `json:"responder_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Answers     AnswerSet `json:"answers"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
