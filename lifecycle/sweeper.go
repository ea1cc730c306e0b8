// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/flashpoll/db"
)

// Sweeper purges expired polls. It runs at process start and before every
// poll creation; there is no background timer.
type Sweeper struct {
	store *db.Store
}

func NewSweeper(store *db.Store) *Sweeper {
	return &Sweeper{store: store}
}

// Sweep cascade-deletes every poll whose expiry is behind now and reports
// how many were purged. A failure on one poll never blocks the rest of the
// batch.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.store.SelectExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, poll := range expired {
		if err := s.store.DeletePollCascade(ctx, poll.ID); err != nil {
			slog.Error("failed to purge expired poll", "poll_key", poll.PollKey, "error", err)
			continue
		}
		purged++
	}

	if purged > 0 {
		slog.Info("expired polls purged", "count", purged)
	}
	return purged, nil
}
