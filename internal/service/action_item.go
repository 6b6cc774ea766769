package service

import (
	"context"
	"fmt"
	"log/slog"

	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/common/metrics"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/store"
)

type ToggleActionItemParams struct {
	SprintID   int64 // optional; when set it must match the feedback's sprint
	FeedbackID int64
	UserID     string
	UserName   string
}

// ActionItemService flags feedback for follow-up. Action items carry their own
// upvote pool, separate from feedback upvotes.
type ActionItemService interface {
	Toggle(ctx context.Context, params ToggleActionItemParams) (*model.Feedback, error)
	ToggleUpvote(ctx context.Context, feedbackID int64, userID string) (*model.ActionItemMeta, error)
	List(ctx context.Context, sprintID int64) ([]model.Feedback, error)
	Count(ctx context.Context, sprintID int64) (int64, error)
}

type actionItemService struct {
	txRunner  TxRunner
	feedbacks store.FeedbackStore
	publisher EventPublisher
	// strictOwner restricts unsetting to the user who set the flag.
	strictOwner bool
}

func NewActionItemService(txRunner TxRunner, feedbacks store.FeedbackStore, publisher EventPublisher, strictOwner bool) ActionItemService {
	return &actionItemService{
		txRunner:    txRunner,
		feedbacks:   feedbacks,
		publisher:   publisher,
		strictOwner: strictOwner,
	}
}

func (s *actionItemService) Toggle(ctx context.Context, params ToggleActionItemParams) (*model.Feedback, error) {
	fb, err := s.toggle(ctx, params)
	metrics.ObserveMutation("toggle_action_item", err)
	return fb, err
}

func (s *actionItemService) toggle(ctx context.Context, params ToggleActionItemParams) (*model.Feedback, error) {
	if err := requireID("feedbackId", params.FeedbackID); err != nil {
		return nil, err
	}
	userID, err := requireUserID("userId", params.UserID)
	if err != nil {
		return nil, err
	}
	userName, err := requireText("userName", params.UserName, maxNameLen)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		FeedbackID: &params.FeedbackID,
		UserID:     &userID,
		Component:  "retro.service.action_item",
	})

	var updated *model.Feedback
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		fb, err := lockFeedback(ctx, stores, params.FeedbackID, params.SprintID)
		if err != nil {
			return err
		}

		var meta *model.ActionItemMeta
		if !fb.ActionItem {
			meta = model.NewActionItemMeta(userID, userName)
		} else if fb.ActionItemMeta != nil && fb.ActionItemMeta.AddedByUser != userID {
			if s.strictOwner {
				return ErrNotActionItemOwner
			}
			slog.WarnContext(ctx, "action item unset by a user other than its owner",
				"owner_user_id", fb.ActionItemMeta.AddedByUser,
			)
		}

		updated, err = stores.Feedbacks().SetActionItem(ctx, fb.ID, meta)
		if err != nil {
			return fmt.Errorf("setting action item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SprintID: &updated.SprintID})
	slog.InfoContext(ctx, "action item toggled", "action_item", updated.ActionItem)

	publish(ctx, s.publisher, model.BoardEvent{
		Type:       model.EventActionItemToggled,
		SprintID:   updated.SprintID,
		FeedbackID: updated.ID,
		UserID:     userID,
	})
	return updated, nil
}

func (s *actionItemService) ToggleUpvote(ctx context.Context, feedbackID int64, userID string) (*model.ActionItemMeta, error) {
	meta, err := s.toggleUpvote(ctx, feedbackID, userID)
	metrics.ObserveMutation("toggle_action_item_upvote", err)
	return meta, err
}

func (s *actionItemService) toggleUpvote(ctx context.Context, feedbackID int64, userID string) (*model.ActionItemMeta, error) {
	if err := requireID("feedbackId", feedbackID); err != nil {
		return nil, err
	}
	userID, err := requireUserID("userId", userID)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		FeedbackID: &feedbackID,
		UserID:     &userID,
		Component:  "retro.service.action_item",
	})

	var (
		updated *model.Feedback
		voted   bool
	)
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		fb, err := lockFeedback(ctx, stores, feedbackID, 0)
		if err != nil {
			return err
		}
		if !fb.ActionItem || fb.ActionItemMeta == nil {
			return newValidationError("feedbackId", "is not an action item")
		}

		meta := *fb.ActionItemMeta
		meta.UpvotedByUserName = append([]string(nil), fb.ActionItemMeta.UpvotedByUserName...)
		voted = meta.ToggleUpvote(userID)

		updated, err = stores.Feedbacks().SetActionItem(ctx, fb.ID, &meta)
		if err != nil {
			return fmt.Errorf("updating action item upvotes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SprintID: &updated.SprintID})
	slog.InfoContext(ctx, "action item upvote toggled",
		"voted", voted,
		"upvotes", len(updated.ActionItemMeta.UpvotedByUserName),
	)

	publish(ctx, s.publisher, model.BoardEvent{
		Type:       model.EventActionItemUpvoteToggle,
		SprintID:   updated.SprintID,
		FeedbackID: updated.ID,
		UserID:     userID,
	})
	return updated.ActionItemMeta, nil
}

func (s *actionItemService) List(ctx context.Context, sprintID int64) ([]model.Feedback, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return nil, err
	}
	items, err := s.feedbacks.ListActionItems(ctx, sprintID)
	if err != nil {
		return nil, fmt.Errorf("listing action items: %w", err)
	}
	return items, nil
}

func (s *actionItemService) Count(ctx context.Context, sprintID int64) (int64, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return 0, err
	}
	n, err := s.feedbacks.CountActionItems(ctx, sprintID)
	if err != nil {
		return 0, fmt.Errorf("counting action items: %w", err)
	}
	return n, nil
}
