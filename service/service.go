// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/flashpoll/db"
	"github.com/danielhkuo/flashpoll/keys"
	"github.com/danielhkuo/flashpoll/lifecycle"
	"github.com/danielhkuo/flashpoll/models"
)

// PollTTL is how long a poll lives before the sweep may purge it.
const PollTTL = 90 * 24 * time.Hour

// maxKeyAttempts bounds the retry loop when a freshly generated key collides
// with an existing one. Collisions are astronomically unlikely at 10 base62
// characters, but the store constraint is the authority, not the generator.
const maxKeyAttempts = 3

// ValidationError rejects malformed input. The message is safe to show the
// caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// PollService orchestrates poll creation and response submission on top of
// the store and the lifecycle sweeper.
type PollService struct {
	store   *db.Store
	sweeper *lifecycle.Sweeper
}

func NewPollService(store *db.Store, sweeper *lifecycle.Sweeper) *PollService {
	return &PollService{store: store, sweeper: sweeper}
}

// Publish validates the poll, runs a cleanup sweep, and persists the poll
// with its questions atomically. Returns the taker-facing and
// creator-facing keys.
func (s *PollService) Publish(ctx context.Context, title string, questions []models.QuestionInput) (pollKey, creatorKey string, err error) {
	if title == "" {
		return "", "", &ValidationError{Msg: "title is required"}
	}
	if questions == nil {
		return "", "", &ValidationError{Msg: "questions must be a list"}
	}
	for i, q := range questions {
		if !models.ValidQuestionType(q.Type) {
			return "", "", &ValidationError{Msg: fmt.Sprintf("question %d has unknown type %q", i, q.Type)}
		}
	}

	now := time.Now().UTC().Truncate(time.Second)

	// Best-effort cleanup on the creation path. A sweep failure is logged
	// by the sweeper and does not block publishing.
	if _, err := s.sweeper.Sweep(ctx, now); err != nil {
		slog.Warn("pre-creation sweep failed", "error", err)
	}

	poll := models.Poll{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		ExpiresAt: now.Add(PollTTL),
	}
	qs := normalizeQuestions(questions)

	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		if pollKey, err = keys.Generate(); err != nil {
			return "", "", err
		}
		if creatorKey, err = keys.Generate(); err != nil {
			return "", "", err
		}
		if pollKey == creatorKey {
			continue
		}
		poll.PollKey, poll.CreatorKey = pollKey, creatorKey

		err = s.store.CreatePoll(ctx, poll, qs)
		if errors.Is(err, db.ErrConflict) {
			continue
		}
		if err != nil {
			return "", "", err
		}
		return pollKey, creatorKey, nil
	}

	return "", "", fmt.Errorf("could not allocate unique poll keys after %d attempts", maxKeyAttempts)
}

// normalizeQuestions assigns 0-based indexes in input order. Text questions
// never carry options, and an empty option list on a choice question is
// stored as no options rather than rejected.
func normalizeQuestions(in []models.QuestionInput) []models.Question {
	out := make([]models.Question, 0, len(in))
	for i, q := range in {
		opts := q.Options
		if q.Type == models.QuestionText || len(opts) == 0 {
			opts = nil
		}
		out = append(out, models.Question{
			Index:   i,
			Type:    q.Type,
			Prompt:  q.Prompt,
			Options: opts,
		})
	}
	return out
}

// SubmitResponse records one response per responder id per poll. Answers are
// stored opaquely; they are not checked against the poll's question types or
// options.
func (s *PollService) SubmitResponse(ctx context.Context, pollKey, responderID string, answers models.AnswerSet) error {
	poll, err := s.store.GetPollByPollKey(ctx, pollKey)
	if err != nil {
		// Unknown and expired-then-swept polls are indistinguishable here.
		return err
	}
	if responderID == "" {
		return &ValidationError{Msg: "responder_id is required"}
	}

	// Early exit only. The (poll_id, responder_id) primary key is what
	// enforces uniqueness under concurrent submission.
	n, err := s.store.CountResponses(ctx, poll.ID, responderID)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("responder %q already submitted: %w", responderID, db.ErrConflict)
	}

	submittedAt := time.Now().UTC().Truncate(time.Second)
	return s.store.InsertResponse(ctx, poll.ID, responderID, submittedAt, answers)
}

// TakerView returns what the taking page needs: title and ordered questions.
func (s *PollService) TakerView(ctx context.Context, pollKey string) (models.TakerView, error) {
	poll, err := s.store.GetPollByPollKey(ctx, pollKey)
	if err != nil {
		return models.TakerView{}, err
	}

	questions, err := s.store.GetQuestions(ctx, poll.ID)
	if err != nil {
		return models.TakerView{}, err
	}

	return models.TakerView{
		PollKey:   poll.PollKey,
		Title:     poll.Title,
		Questions: questions,
	}, nil
}

// Dashboard returns the creator's view: poll metadata, questions, and every
// response, most recent first.
func (s *PollService) Dashboard(ctx context.Context, creatorKey string) (models.DashboardView, error) {
	poll, err := s.store.GetPollByCreatorKey(ctx, creatorKey)
	if err != nil {
		return models.DashboardView{}, err
	}

	questions, err := s.store.GetQuestions(ctx, poll.ID)
	if err != nil {
		return models.DashboardView{}, err
	}

	responses, err := s.store.GetResponses(ctx, poll.ID)
	if err != nil {
		return models.DashboardView{}, err
	}

	return models.DashboardView{
		PollKey:   poll.PollKey,
		Title:     poll.Title,
		CreatedAt: poll.CreatedAt,
		ExpiresAt: poll.ExpiresAt,
		Questions: questions,
		Responses: responses,
	}, nil
}

// ListPolls returns poll metadata for the admin listing.
func (s *PollService) ListPolls(ctx context.Context) ([]models.PollSummary, error) {
	return s.store.ListPolls(ctx)
}
