// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/flashpoll/cliparse"
	"github.com/danielhkuo/flashpoll/db"
	"github.com/danielhkuo/flashpoll/handlers"
	"github.com/danielhkuo/flashpoll/lifecycle"
	"github.com/danielhkuo/flashpoll/middleware"
	"github.com/danielhkuo/flashpoll/service"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire the service graph
	sweeper := lifecycle.NewSweeper(store)
	svc := service.NewPollService(store, sweeper)

	api := handlers.NewAPIHandler(svc, cfg)
	admin := handlers.NewAdminHandler(svc)
	pages := handlers.NewPageHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// JSON API
	mux.HandleFunc("POST /api/polls", middleware.WithLogging(api.CreatePoll))
	mux.HandleFunc("GET /api/polls/{pollKey}", middleware.WithLogging(api.GetPoll))
	mux.HandleFunc("POST /api/polls/{pollKey}/responses", middleware.WithLogging(api.SubmitResponse))
	mux.HandleFunc("GET /api/creator/{creatorKey}", middleware.WithLogging(api.GetDashboard))

	// Admin listing (token gated, metadata only)
	mux.HandleFunc("GET /api/admin/polls",
		middleware.WithLogging(middleware.RequireAdminToken(cfg.AdminToken, admin.ListPolls)))

	// Pages
	mux.HandleFunc("GET /p/{pollKey}", middleware.WithLogging(pages.TakingPage))
	mux.HandleFunc("GET /c/{creatorKey}", middleware.WithLogging(pages.CreatorPage))
	mux.HandleFunc("GET /", middleware.WithLogging(pages.Landing))

	return mux
}
