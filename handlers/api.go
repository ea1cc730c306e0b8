// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/flashpoll/cliparse"
	"github.com/danielhkuo/flashpoll/db"
	"github.com/danielhkuo/flashpoll/middleware"
	"github.com/danielhkuo/flashpoll/models"
	"github.com/danielhkuo/flashpoll/service"
)

type APIHandler struct {
	svc *service.PollService
	cfg cliparse.Config
}

func NewAPIHandler(svc *service.PollService, cfg cliparse.Config) *APIHandler {
	return &APIHandler{svc: svc, cfg: cfg}
}

// CreatePoll handles POST /api/polls
func (h *APIHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	pollKey, creatorKey, err := h.svc.Publish(r.Context(), req.Title, req.Questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	slog.Info("poll published", "poll_key", pollKey, "questions", len(req.Questions))

	middleware.JSONResponse(w, http.StatusOK, models.CreatePollResponse{
		CreatorURL: h.cfg.BaseURL + "/c/" + creatorKey,
		PollURL:    h.cfg.BaseURL + "/p/" + pollKey,
		CreatorKey: creatorKey,
		PollKey:    pollKey,
	})
}

// SubmitResponse handles POST /api/polls/{pollKey}/responses
func (h *APIHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	pollKey := r.PathValue("pollKey")

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.svc.SubmitResponse(r.Context(), pollKey, req.ResponderID, req.Answers); err != nil {
		writeServiceError(w, err)
		return
	}

	slog.Info("response submitted", "poll_key", pollKey, "responder_id", req.ResponderID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponseResponse{OK: true})
}

// GetPoll handles GET /api/polls/{pollKey}, consumed by the taking page
// script.
func (h *APIHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.TakerView(r.Context(), r.PathValue("pollKey"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}

// GetDashboard handles GET /api/creator/{creatorKey}, consumed by the
// creator dashboard script.
func (h *APIHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Dashboard(r.Context(), r.PathValue("creatorKey"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Unexpected storage failures stay opaque to the caller.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		middleware.ErrorResponse(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, db.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "poll not found")
	case errors.Is(err, db.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "responder_id already submitted for this poll")
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "unexpected error")
	}
}
