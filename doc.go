// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the flashpoll server.

Flashpoll publishes short-lived polls. A creator builds a poll (title plus
an ordered list of text, single-choice, and multi-choice questions) and gets
two links back: a taking link to share and a private creator link for
viewing responses. Takers identify themselves with a responder id that may
submit at most once per poll. Polls expire 90 days after creation and are
purged by a best-effort sweep.

# Starting the Server

	go run .

With the defaults this listens on :3322 backed by a local sqlite file.

# Configuration

Flags, environment variables, or a .env file:

  - PORT (-p): server port (default 3322)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string (default file:flashpoll.db)
  - BASE_URL (-b): public base URL embedded in shareable links
  - ADMIN_TOKEN (-admin-token): enables the admin metadata listing

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (API, pages, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, admin token gate, CORS
  - models: request/response and domain types
  - service: publish and submit orchestration
  - lifecycle: best-effort expiry sweep
  - keys: short URL-safe key generation
  - db: store, schema, and constraints
  - cliparse: configuration parsing
  - web: embedded HTML pages

See package documentation for each component.
*/
package main
