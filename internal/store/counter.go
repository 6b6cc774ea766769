package store

import (
	"context"

	"sprintsync.app/retro/core/db/sqlc"
)

type counterStore struct {
	queries *sqlc.Queries
}

func newCounterStore(queries *sqlc.Queries) CounterStore {
	return &counterStore{queries: queries}
}

// ReconcileCommentCounts rewrites comment_count on rows where it drifted and
// returns how many rows changed.
func (s *counterStore) ReconcileCommentCounts(ctx context.Context) (int64, error) {
	return s.queries.ReconcileCommentCounts(ctx)
}

func (s *counterStore) ReconcileUpvoteCounts(ctx context.Context) (int64, error) {
	return s.queries.ReconcileUpvoteCounts(ctx)
}
