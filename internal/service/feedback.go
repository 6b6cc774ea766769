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

type AddFeedbackParams struct {
	SprintID int64
	Author   string
	Category model.Category
	Message  string
	Avatar   string
}

// FeedbackService manages feedback items and the column they sit in.
type FeedbackService interface {
	Add(ctx context.Context, params AddFeedbackParams) (*model.Feedback, error)
	// List returns a sprint's feedback, optionally restricted to one category.
	List(ctx context.Context, sprintID int64, category *model.Category) ([]model.Feedback, error)
	UpdateCategory(ctx context.Context, feedbackID int64, category model.Category) (*model.Feedback, error)
}

type feedbackService struct {
	sprints   store.SprintStore
	feedbacks store.FeedbackStore
	publisher EventPublisher
}

func NewFeedbackService(sprints store.SprintStore, feedbacks store.FeedbackStore, publisher EventPublisher) FeedbackService {
	return &feedbackService{
		sprints:   sprints,
		feedbacks: feedbacks,
		publisher: publisher,
	}
}

func (s *feedbackService) Add(ctx context.Context, params AddFeedbackParams) (*model.Feedback, error) {
	fb, err := s.add(ctx, params)
	metrics.ObserveMutation("add_feedback", err)
	return fb, err
}

func (s *feedbackService) add(ctx context.Context, params AddFeedbackParams) (*model.Feedback, error) {
	if err := requireID("sprintId", params.SprintID); err != nil {
		return nil, err
	}
	if err := requireCategory("category", params.Category); err != nil {
		return nil, err
	}
	message, err := requireText("message", params.Message, maxMessageLen)
	if err != nil {
		return nil, err
	}
	author, err := requireText("author", params.Author, maxNameLen)
	if err != nil {
		return nil, err
	}
	avatar, err := requireAvatar("avatar", params.Avatar)
	if err != nil {
		return nil, err
	}

	if _, err := s.sprints.GetByID(ctx, params.SprintID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSprintNotFound
		}
		return nil, fmt.Errorf("getting sprint: %w", err)
	}

	fb := &model.Feedback{
		ID:       id.New(),
		SprintID: params.SprintID,
		Author:   author,
		Category: params.Category,
		Message:  message,
		Avatar:   avatar,
	}
	if err := s.feedbacks.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("creating feedback: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SprintID:   &fb.SprintID,
		FeedbackID: &fb.ID,
		Component:  "retro.service.feedback",
	})
	slog.InfoContext(ctx, "feedback added", "category", fb.Category)

	publish(ctx, s.publisher, model.BoardEvent{
		Type:       model.EventFeedbackCreated,
		SprintID:   fb.SprintID,
		FeedbackID: fb.ID,
	})
	return fb, nil
}

func (s *feedbackService) List(ctx context.Context, sprintID int64, category *model.Category) ([]model.Feedback, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return nil, err
	}
	if category != nil {
		if err := requireCategory("category", *category); err != nil {
			return nil, err
		}
	}
	feedbacks, err := s.feedbacks.ListBySprint(ctx, sprintID, category)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	return feedbacks, nil
}

func (s *feedbackService) UpdateCategory(ctx context.Context, feedbackID int64, category model.Category) (*model.Feedback, error) {
	fb, err := s.updateCategory(ctx, feedbackID, category)
	metrics.ObserveMutation("update_category", err)
	return fb, err
}

func (s *feedbackService) updateCategory(ctx context.Context, feedbackID int64, category model.Category) (*model.Feedback, error) {
	if err := requireID("feedbackId", feedbackID); err != nil {
		return nil, err
	}
	if err := requireCategory("category", category); err != nil {
		return nil, err
	}

	fb, err := s.feedbacks.UpdateCategory(ctx, feedbackID, category)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("updating feedback category: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SprintID:   &fb.SprintID,
		FeedbackID: &fb.ID,
		Component:  "retro.service.feedback",
	})
	slog.InfoContext(ctx, "feedback recategorized", "category", category)

	publish(ctx, s.publisher, model.BoardEvent{
		Type:       model.EventFeedbackRecategorized,
		SprintID:   fb.SprintID,
		FeedbackID: fb.ID,
	})
	return fb, nil
}
