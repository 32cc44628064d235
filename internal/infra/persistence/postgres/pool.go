package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolWatchInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// poolStatser is the part of *sql.DB the watcher reads.
type poolStatser interface {
	Stats() sql.DBStats
}

// poolWatcher reports connection waits between two samples. A burst of
// waits usually means the sweeper and API traffic are competing for a pool
// sized too small.
type poolWatcher struct {
	db     poolStatser
	logger *slog.Logger
	last   sql.DBStats
}

func newPoolWatcher(db poolStatser, logger *slog.Logger) *poolWatcher {
	return &poolWatcher{db: db, logger: logger}
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	if w.db == nil || w.logger == nil {
		return
	}

	w.last = w.db.Stats()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

// sample compares the current stats with the previous sample and logs when
// callers had to wait for a connection.
func (w *poolWatcher) sample(ctx context.Context) {
	cur := w.db.Stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
