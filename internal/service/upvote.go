package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sprintsync.app/retro/common/id"
	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/common/metrics"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/store"
)

type ToggleUpvoteParams struct {
	SprintID   int64 // optional; when set it must match the feedback's sprint
	UserID     string
	FeedbackID int64
}

// UpvoteService implements one vote per user per feedback item, where a second
// vote from the same user withdraws the first.
type UpvoteService interface {
	Toggle(ctx context.Context, params ToggleUpvoteParams) (*model.UpvoteResult, error)
	List(ctx context.Context, sprintID int64) ([]model.Upvote, error)
	Count(ctx context.Context, sprintID int64) (int64, error)
}

type upvoteService struct {
	txRunner  TxRunner
	upvotes   store.UpvoteStore
	publisher EventPublisher
}

func NewUpvoteService(txRunner TxRunner, upvotes store.UpvoteStore, publisher EventPublisher) UpvoteService {
	return &upvoteService{
		txRunner:  txRunner,
		upvotes:   upvotes,
		publisher: publisher,
	}
}

func (s *upvoteService) Toggle(ctx context.Context, params ToggleUpvoteParams) (*model.UpvoteResult, error) {
	result, err := s.toggle(ctx, params)
	metrics.ObserveMutation("toggle_upvote", err)
	return result, err
}

func (s *upvoteService) toggle(ctx context.Context, params ToggleUpvoteParams) (*model.UpvoteResult, error) {
	userID, err := requireUserID("userId", params.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireID("feedbackId", params.FeedbackID); err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		FeedbackID: &params.FeedbackID,
		UserID:     &userID,
		Component:  "retro.service.upvote",
	})

	var (
		result   model.UpvoteResult
		sprintID int64
	)
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		// Locking the parent row serializes toggles on the same item, so the
		// recount below always sees every committed vote.
		fb, err := lockFeedback(ctx, stores, params.FeedbackID, params.SprintID)
		if err != nil {
			return err
		}
		sprintID = fb.SprintID

		existing, err := stores.Upvotes().Get(ctx, userID, fb.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			upvote := &model.Upvote{ID: id.New(), UserID: userID, FeedbackID: fb.ID}
			if err := stores.Upvotes().Create(ctx, upvote); err != nil {
				if errors.Is(err, store.ErrDuplicate) {
					return ErrConflict
				}
				return fmt.Errorf("creating upvote: %w", err)
			}
			result.Voted = true
		case err != nil:
			return fmt.Errorf("getting upvote: %w", err)
		default:
			if err := stores.Upvotes().Delete(ctx, existing.ID); err != nil {
				return fmt.Errorf("deleting upvote: %w", err)
			}
			result.Voted = false
		}

		count, err := stores.Feedbacks().RecountUpvotes(ctx, fb.ID)
		if err != nil {
			return fmt.Errorf("recounting upvotes: %w", err)
		}
		result.FeedbackID = fb.ID
		result.UpvoteCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SprintID: &sprintID})
	slog.InfoContext(ctx, "upvote toggled",
		"voted", result.Voted,
		"upvote_count", result.UpvoteCount,
	)

	publish(ctx, s.publisher, model.BoardEvent{
		Type:       model.EventUpvoteToggled,
		SprintID:   sprintID,
		FeedbackID: result.FeedbackID,
		UserID:     userID,
	})
	return &result, nil
}

func (s *upvoteService) List(ctx context.Context, sprintID int64) ([]model.Upvote, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return nil, err
	}
	upvotes, err := s.upvotes.ListBySprint(ctx, sprintID)
	if err != nil {
		return nil, fmt.Errorf("listing upvotes: %w", err)
	}
	return upvotes, nil
}

func (s *upvoteService) Count(ctx context.Context, sprintID int64) (int64, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return 0, err
	}
	n, err := s.upvotes.CountBySprint(ctx, sprintID)
	if err != nil {
		return 0, fmt.Errorf("counting upvotes: %w", err)
	}
	return n, nil
}

// lockFeedback loads and row-locks a feedback item inside a transaction. A
// non-zero sprintID must match the item's sprint.
func lockFeedback(ctx context.Context, stores StoreProvider, feedbackID, sprintID int64) (*model.Feedback, error) {
	fb, err := stores.Feedbacks().GetForUpdate(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("locking feedback: %w", err)
	}
	if sprintID != 0 && fb.SprintID != sprintID {
		return nil, newValidationError("sprintId", "does not match the feedback's sprint")
	}
	return fb, nil
}
