// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/flashpoll/models"
)

// Supported driver names for Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	// ErrConflict reports a violated uniqueness constraint: a poll or
	// creator key already in use, or a second response for a responder id.
	ErrConflict = errors.New("conflict")

	// ErrNotFound reports a point lookup that matched nothing.
	ErrNotFound = errors.New("not found")
)

// Store is the single owner of persisted state. Open it at startup, pass it
// down explicitly, close it at shutdown.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects using the given driver ("sqlite" or "postgres") and URL.
func Open(driver, url string) (*Store, error) {
	const op = "db.Open"

	switch driver {
	case DriverSQLite:
		url = sqliteDSN(url)
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("%s: unsupported driver %q", op, driver)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{db: conn, driver: driver}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// sqliteDSN makes the sqlite connection enforce foreign keys, queue
// concurrent writers instead of failing, and write timestamps in a stable
// sortable text format.
func sqliteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_time_format=sqlite&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// rebind rewrites ? placeholders to $N for the postgres driver. Queries are
// written once, in sqlite's placeholder style.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// isUniqueViolation matches the uniqueness errors of both supported drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// CreatePoll inserts the poll row and all of its questions in one
// transaction: a poll without its questions is never observable. Returns
// ErrConflict if either key is already taken.
func (s *Store) CreatePoll(ctx context.Context, poll models.Poll, questions []models.Question) error {
	const op = "db.CreatePoll"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.rebind(`
		INSERT INTO poll (id, poll_key, creator_key, title, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), poll.ID, poll.PollKey, poll.CreatorKey, poll.Title, poll.CreatedAt, poll.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, q := range questions {
		opts, err := encodeOptions(q.Options)
		if err != nil {
			return fmt.Errorf("%s: options: %w", op, err)
		}
		_, err = tx.ExecContext(ctx, s.rebind(`
			INSERT INTO question (poll_id, q_index, q_type, prompt, options)
			VALUES (?, ?, ?, ?, ?)
		`), poll.ID, q.Index, q.Type, q.Prompt, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

const pollColumns = `id, poll_key, creator_key, title, created_at, expires_at`

// GetPollByPollKey looks up a poll by its taker-facing key.
func (s *Store) GetPollByPollKey(ctx context.Context, key string) (models.Poll, error) {
	const op = "db.GetPollByPollKey"
	return s.getPoll(ctx, op, `SELECT `+pollColumns+` FROM poll WHERE poll_key = ?`, key)
}

// GetPollByCreatorKey looks up a poll by its creator-facing key.
func (s *Store) GetPollByCreatorKey(ctx context.Context, key string) (models.Poll, error) {
	const op = "db.GetPollByCreatorKey"
	return s.getPoll(ctx, op, `SELECT `+pollColumns+` FROM poll WHERE creator_key = ?`, key)
}

func (s *Store) getPoll(ctx context.Context, op, query, key string) (models.Poll, error) {
	var p models.Poll
	err := s.db.QueryRowContext(ctx, s.rebind(query), key).Scan(
		&p.ID, &p.PollKey, &p.CreatorKey, &p.Title, &p.CreatedAt, &p.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// GetQuestions returns the poll's questions ordered by index.
func (s *Store) GetQuestions(ctx context.Context, pollID string) ([]models.Question, error) {
	const op = "db.GetQuestions"

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT q_index, q_type, prompt, options
		FROM question
		WHERE poll_id = ?
		ORDER BY q_index
	`), pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var opts sql.NullString
		if err := rows.Scan(&q.Index, &q.Type, &q.Prompt, &opts); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if q.Options, err = decodeOptions(opts); err != nil {
			return nil, fmt.Errorf("%s: options: %w", op, err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}
	return questions, nil
}

// GetResponses returns the poll's responses, most recent first.
func (s *Store) GetResponses(ctx context.Context, pollID string) ([]models.Response, error) {
	const op = "db.GetResponses"

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT responder_id, submitted_at, answers
		FROM response
		WHERE poll_id = ?
		ORDER BY submitted_at DESC, responder_id
	`), pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		var r models.Response
		var answers string
		if err := rows.Scan(&r.ResponderID, &r.SubmittedAt, &answers); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if err := json.Unmarshal([]byte(answers), &r.Answers); err != nil {
			return nil, fmt.Errorf("%s: answers: %w", op, err)
		}
		responses = append(responses, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}
	return responses, nil
}

// CountResponses counts responses by one responder to one poll. The service
// uses it as an early-exit pre-check only; InsertResponse's constraint is
// the actual enforcement.
func (s *Store) CountResponses(ctx context.Context, pollID, responderID string) (int, error) {
	const op = "db.CountResponses"

	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT COUNT(*) FROM response WHERE poll_id = ? AND responder_id = ?
	`), pollID, responderID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// InsertResponse records one response. The (poll_id, responder_id) primary
// key makes a duplicate submission fail atomically with ErrConflict, even
// under concurrent submissions that both passed the count pre-check.
func (s *Store) InsertResponse(ctx context.Context, pollID, responderID string, submittedAt time.Time, answers models.AnswerSet) error {
	const op = "db.InsertResponse"

	if answers == nil {
		answers = models.AnswerSet{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("%s: answers: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO response (poll_id, responder_id, submitted_at, answers)
		VALUES (?, ?, ?, ?)
	`), pollID, responderID, submittedAt, string(raw))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeletePollCascade removes the poll's responses, questions, and the poll
// row as one transaction: all three vanish together or not at all.
func (s *Store) DeletePollCascade(ctx context.Context, pollID string) error {
	const op = "db.DeletePollCascade"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM response WHERE poll_id = ?`,
		`DELETE FROM question WHERE poll_id = ?`,
		`DELETE FROM poll WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, s.rebind(stmt), pollID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SelectExpired returns every poll whose expiry is behind now.
func (s *Store) SelectExpired(ctx context.Context, now time.Time) ([]models.Poll, error) {
	const op = "db.SelectExpired"

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT `+pollColumns+` FROM poll WHERE expires_at < ? ORDER BY expires_at
	`), now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var polls []models.Poll
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.PollKey, &p.CreatorKey, &p.Title, &p.CreatedAt, &p.ExpiresAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		polls = append(polls, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}
	return polls, nil
}

// ListPolls returns metadata and response counts for every poll, newest
// first. Used by the admin listing only.
func (s *Store) ListPolls(ctx context.Context) ([]models.PollSummary, error) {
	const op = "db.ListPolls"

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.poll_key, p.title, p.created_at, p.expires_at, COUNT(r.responder_id)
		FROM poll p
		LEFT JOIN response r ON p.id = r.poll_id
		GROUP BY p.id, p.poll_key, p.title, p.created_at, p.expires_at
		ORDER BY p.created_at DESC, p.poll_key
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	polls := []models.PollSummary{}
	for rows.Next() {
		var p models.PollSummary
		if err := rows.Scan(&p.PollKey, &p.Title, &p.CreatedAt, &p.ExpiresAt, &p.ResponseCount); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		polls = append(polls, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}
	return polls, nil
}

// encodeOptions serializes an option list as JSON text, or NULL when the
// question carries no options.
func encodeOptions(opts []string) (any, error) {
	if len(opts) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func decodeOptions(raw sql.NullString) ([]string, error) {
	if !raw.Valid {
		return nil, nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(raw.String), &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
