// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service orchestrates the poll lifecycle between the HTTP layer and
the store.

Publish: validate, sweep expired polls, generate the key pair, persist poll
and questions atomically, retrying with fresh keys a bounded number of times
if a key collides.

SubmitResponse: resolve the poll key, validate the responder id, then insert.
The count pre-check is an optimization; the storage constraint decides races.

Errors follow a small taxonomy: *ValidationError for malformed input,
db.ErrNotFound for unknown keys, db.ErrConflict for duplicates, and anything
else is an unexpected storage failure the HTTP layer reports opaquely.
*/
package service
