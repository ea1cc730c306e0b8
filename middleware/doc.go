// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

  - WithLogging: request start/finish logging via slog
  - JSONResponse / ErrorResponse: JSON writers; errors serialize as {"error": msg}
  - ParseJSONBody: request body decoding
  - RequireAdminToken: constant-time shared-secret gate for the admin listing
  - CORS: permissive cross-origin headers for the page scripts
*/
package middleware
