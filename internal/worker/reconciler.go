package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/common/metrics"
	"sprintsync.app/retro/internal/store"
)

type ReconcilerConfig struct {
	Interval time.Duration
	// RunOnStart reconciles immediately instead of waiting one interval.
	RunOnStart bool
}

// Reconciler periodically rewrites comment_count and upvote_count from the
// child rows. Toggles keep the counters exact inside their transaction, so
// drift only comes from rows edited or deleted outside the service.
type Reconciler struct {
	counters store.CounterStore
	cfg      ReconcilerConfig

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewReconciler(counters store.CounterStore, cfg ReconcilerConfig) *Reconciler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &Reconciler{
		counters:  counters,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run blocks until ctx is cancelled or Stop is called.
func (r *Reconciler) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "retro.worker.reconciler",
	})

	defer close(r.stoppedCh)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "reconciler started", "interval", r.cfg.Interval)

	if r.cfg.RunOnStart {
		r.tick(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			slog.InfoContext(ctx, "reconciler stopping")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// Stop signals the reconciler to stop and waits for the current cycle.
func (r *Reconciler) Stop() {
	close(r.stopCh)
	<-r.stoppedCh
}

func (r *Reconciler) tick(ctx context.Context) {
	if _, err := r.ReconcileOnce(ctx); err != nil && ctx.Err() == nil {
		slog.ErrorContext(ctx, "reconcile cycle error", "error", err)
	}
}

// ReconcileOnce fixes both counters and returns the number of rows changed.
// A failure on one counter does not skip the other.
func (r *Reconciler) ReconcileOnce(ctx context.Context) (int64, error) {
	sc := logger.StartSpan(ctx, "worker.reconcile_counters")
	defer sc.End()
	ctx = sc.Context()

	comments, commentErr := r.counters.ReconcileCommentCounts(ctx)
	if commentErr != nil {
		commentErr = fmt.Errorf("reconciling comment counts: %w", commentErr)
	} else {
		metrics.ObserveReconciled("comment_count", comments)
	}

	upvotes, upvoteErr := r.counters.ReconcileUpvoteCounts(ctx)
	if upvoteErr != nil {
		upvoteErr = fmt.Errorf("reconciling upvote counts: %w", upvoteErr)
	} else {
		metrics.ObserveReconciled("upvote_count", upvotes)
	}

	fixed := comments + upvotes
	if fixed > 0 {
		slog.WarnContext(ctx, "counters drifted and were reconciled",
			"comment_rows", comments,
			"upvote_rows", upvotes)
	} else {
		slog.DebugContext(ctx, "counters consistent")
	}

	err := errors.Join(commentErr, upvoteErr)
	sc.RecordError(err)
	return fixed, err
}
