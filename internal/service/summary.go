package service

import (
	"context"
	"errors"
	"fmt"

	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/store"
)

// SummaryService reads the dashboard counts for a sprint in one call.
type SummaryService interface {
	BoardSummary(ctx context.Context, sprintID int64) (*model.BoardSummary, error)
}

type summaryService struct {
	sprints   store.SprintStore
	feedbacks store.FeedbackStore
	comments  store.CommentStore
	upvotes   store.UpvoteStore
}

func NewSummaryService(sprints store.SprintStore, feedbacks store.FeedbackStore, comments store.CommentStore, upvotes store.UpvoteStore) SummaryService {
	return &summaryService{
		sprints:   sprints,
		feedbacks: feedbacks,
		comments:  comments,
		upvotes:   upvotes,
	}
}

func (s *summaryService) BoardSummary(ctx context.Context, sprintID int64) (*model.BoardSummary, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return nil, err
	}
	if _, err := s.sprints.GetByID(ctx, sprintID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSprintNotFound
		}
		return nil, fmt.Errorf("getting sprint: %w", err)
	}

	summary := &model.BoardSummary{SprintID: sprintID}
	var err error
	if summary.FeedbackCount, err = s.feedbacks.CountBySprint(ctx, sprintID); err != nil {
		return nil, fmt.Errorf("counting feedback: %w", err)
	}
	if summary.CommentCount, err = s.comments.CountBySprint(ctx, sprintID); err != nil {
		return nil, fmt.Errorf("counting comments: %w", err)
	}
	if summary.UpvoteCount, err = s.upvotes.CountBySprint(ctx, sprintID); err != nil {
		return nil, fmt.Errorf("counting upvotes: %w", err)
	}
	if summary.ActionItemCount, err = s.feedbacks.CountActionItems(ctx, sprintID); err != nil {
		return nil, fmt.Errorf("counting action items: %w", err)
	}
	return summary, nil
}
