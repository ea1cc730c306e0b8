// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/flashpoll/db"
	"github.com/danielhkuo/flashpoll/models"
	"github.com/danielhkuo/flashpoll/service"
	"github.com/danielhkuo/flashpoll/web"
)

type PageHandler struct {
	svc *service.PollService
}

func NewPageHandler(svc *service.PollService) *PageHandler {
	return &PageHandler{svc: svc}
}

// Landing handles GET / with the poll builder page.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	renderPage(w, "landing.html", nil)
}

// TakingPage handles GET /p/{pollKey}
func (h *PageHandler) TakingPage(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.TakerView(r.Context(), r.PathValue("pollKey"))
	if err != nil {
		writePageError(w, err)
		return
	}
	renderPage(w, "taker.html", view)
}

// dashboardPage is the creator template's data: the dashboard view plus one
// pre-formatted row per response, cells aligned with Questions.
type dashboardPage struct {
	models.DashboardView
	Rows []dashboardRow
}

type dashboardRow struct {
	ResponderID string
	SubmittedAt time.Time
	Answers     []string
}

// CreatorPage handles GET /c/{creatorKey}
func (h *PageHandler) CreatorPage(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Dashboard(r.Context(), r.PathValue("creatorKey"))
	if err != nil {
		writePageError(w, err)
		return
	}

	page := dashboardPage{DashboardView: view}
	for _, resp := range view.Responses {
		row := dashboardRow{ResponderID: resp.ResponderID, SubmittedAt: resp.SubmittedAt}
		for _, q := range view.Questions {
			row.Answers = append(row.Answers, formatAnswer(resp.Answers[strconv.Itoa(q.Index)]))
		}
		page.Rows = append(page.Rows, row)
	}

	renderPage(w, "creator.html", page)
}

// formatAnswer flattens one stored answer into a dashboard table cell. The
// raw JSON stays untouched in the API; only this HTML view formats it.
func formatAnswer(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return string(raw)
	}
}

func renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Render(w, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
	}
}

func writePageError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "poll not found", http.StatusNotFound)
		return
	}
	slog.Error("page request failed", "error", err)
	http.Error(w, "unexpected error", http.StatusInternalServerError)
}
