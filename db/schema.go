// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "fmt"

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func (s *Store) CreateSchema() error {
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    poll_key TEXT NOT NULL UNIQUE,
    creator_key TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    expires_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_poll_expires_at ON poll(expires_at);

-- Questions
CREATE TABLE IF NOT EXISTS question (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    q_index INTEGER NOT NULL,
    q_type TEXT NOT NULL CHECK (q_type IN ('text', 'single', 'multi')),
    prompt TEXT NOT NULL DEFAULT '',
    options TEXT,
    PRIMARY KEY (poll_id, q_index)
);

-- Responses
CREATE TABLE IF NOT EXISTS response (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    responder_id TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL,
    answers TEXT NOT NULL,
    PRIMARY KEY (poll_id, responder_id)
);

CREATE INDEX IF NOT EXISTS idx_response_submitted_at ON response(poll_id, submitted_at);
`
