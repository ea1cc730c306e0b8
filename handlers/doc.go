// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP layer over the poll service.

# API Handlers

  - POST /api/polls: publish a poll, returns both shareable URLs and keys
  - GET /api/polls/{pollKey}: taker view (title + questions)
  - POST /api/polls/{pollKey}/responses: submit one response per responder id
  - GET /api/creator/{creatorKey}: creator dashboard (responses included)
  - GET /api/admin/polls: token-gated metadata listing

# Page Handlers

  - GET /: landing and poll builder
  - GET /p/{pollKey}: taking page
  - GET /c/{creatorKey}: creator dashboard

# Error Mapping

Service errors map to statuses in one place (writeServiceError):

	*service.ValidationError -> 400
	db.ErrNotFound           -> 404
	db.ErrConflict           -> 409
	anything else            -> 500 (logged, opaque body)
*/
package handlers
