// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns all persisted state. Nothing else in the application mutates
the database.

# Store

Open returns a Store bound to one of two drivers:

	store, err := db.Open(db.DriverSQLite, "file:flashpoll.db")

Queries are written once with ? placeholders and rebound to $N for postgres.
The sqlite DSN is decorated with foreign key enforcement, a busy timeout,
and a sortable timestamp format.

# Tables

  - poll: keys, title, creation and expiry timestamps
  - question: ordered typed questions, options as JSON text or NULL
  - response: one row per (poll, responder id), answers as JSON text

# Relationships

	poll 1──* question
	poll 1──* response

# Constraints

Uniqueness lives in the schema, not in application checks:

  - poll.poll_key and poll.creator_key are each globally UNIQUE
  - question PRIMARY KEY (poll_id, q_index)
  - response PRIMARY KEY (poll_id, responder_id)

A violated constraint surfaces as ErrConflict; a missed point lookup as
ErrNotFound. Poll creation and cascade deletion are single transactions, so
a poll is never observable without its questions and never half-deleted.
*/
package db
