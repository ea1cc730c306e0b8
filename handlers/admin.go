// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/flashpoll/middleware"
	"github.com/danielhkuo/flashpoll/service"
)

type AdminHandler struct {
	svc *service.PollService
}

func NewAdminHandler(svc *service.PollService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListPolls handles GET /api/admin/polls. Metadata and response counts only;
// responses themselves are never exposed here. The route is gated by
// middleware.RequireAdminToken.
func (h *AdminHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.svc.ListPolls(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}
