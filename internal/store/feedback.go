package store

import (
	"context"
	"encoding/json"
	"fmt"

	"sprintsync.app/retro/core/db/sqlc"
	"sprintsync.app/retro/internal/model"
)

type feedbackStore struct {
	queries *sqlc.Queries
}

func newFeedbackStore(queries *sqlc.Queries) FeedbackStore {
	return &feedbackStore{queries: queries}
}

func (s *feedbackStore) Create(ctx context.Context, fb *model.Feedback) error {
	row, err := s.queries.CreateFeedback(ctx, sqlc.CreateFeedbackParams{
		ID:       fb.ID,
		SprintID: fb.SprintID,
		Author:   fb.Author,
		Category: string(fb.Category),
		Message:  fb.Message,
		Avatar:   fb.Avatar,
	})
	if err != nil {
		return mapErr(err)
	}
	created, err := toFeedbackModel(row)
	if err != nil {
		return err
	}
	*fb = *created
	return nil
}

func (s *feedbackStore) GetByID(ctx context.Context, id int64) (*model.Feedback, error) {
	row, err := s.queries.GetFeedback(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toFeedbackModel(row)
}

func (s *feedbackStore) GetForUpdate(ctx context.Context, id int64) (*model.Feedback, error) {
	row, err := s.queries.GetFeedbackForUpdate(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toFeedbackModel(row)
}

func (s *feedbackStore) ListBySprint(ctx context.Context, sprintID int64, category *model.Category) ([]model.Feedback, error) {
	params := sqlc.ListFeedbacksBySprintParams{SprintID: sprintID}
	if category != nil {
		c := string(*category)
		params.Category = &c
	}
	rows, err := s.queries.ListFeedbacksBySprint(ctx, params)
	if err != nil {
		return nil, err
	}
	return toFeedbackModels(rows)
}

func (s *feedbackStore) CountBySprint(ctx context.Context, sprintID int64) (int64, error) {
	return s.queries.CountFeedbacksBySprint(ctx, sprintID)
}

func (s *feedbackStore) UpdateCategory(ctx context.Context, id int64, category model.Category) (*model.Feedback, error) {
	row, err := s.queries.UpdateFeedbackCategory(ctx, sqlc.UpdateFeedbackCategoryParams{
		ID:       id,
		Category: string(category),
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toFeedbackModel(row)
}

func (s *feedbackStore) SetActionItem(ctx context.Context, id int64, meta *model.ActionItemMeta) (*model.Feedback, error) {
	params := sqlc.SetFeedbackActionItemParams{ID: id, ActionItem: meta != nil}
	if meta != nil {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("encoding action item meta: %w", err)
		}
		params.ActionItemMeta = raw
	}
	row, err := s.queries.SetFeedbackActionItem(ctx, params)
	if err != nil {
		return nil, mapErr(err)
	}
	return toFeedbackModel(row)
}

func (s *feedbackStore) RecountComments(ctx context.Context, id int64) (int32, error) {
	n, err := s.queries.RecountFeedbackComments(ctx, id)
	return n, mapErr(err)
}

func (s *feedbackStore) RecountUpvotes(ctx context.Context, id int64) (int32, error) {
	n, err := s.queries.RecountFeedbackUpvotes(ctx, id)
	return n, mapErr(err)
}

func (s *feedbackStore) ListActionItems(ctx context.Context, sprintID int64) ([]model.Feedback, error) {
	rows, err := s.queries.ListActionItemsBySprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	return toFeedbackModels(rows)
}

func (s *feedbackStore) CountActionItems(ctx context.Context, sprintID int64) (int64, error) {
	return s.queries.CountActionItemsBySprint(ctx, sprintID)
}

func toFeedbackModel(row sqlc.Feedback) (*model.Feedback, error) {
	fb := &model.Feedback{
		ID:           row.ID,
		SprintID:     row.SprintID,
		Author:       row.Author,
		Category:     model.Category(row.Category),
		Message:      row.Message,
		Avatar:       row.Avatar,
		CommentCount: row.CommentCount,
		UpvoteCount:  row.UpvoteCount,
		ActionItem:   row.ActionItem,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
	if len(row.ActionItemMeta) > 0 {
		var meta model.ActionItemMeta
		if err := json.Unmarshal(row.ActionItemMeta, &meta); err != nil {
			return nil, fmt.Errorf("decoding action item meta for feedback %d: %w", row.ID, err)
		}
		if meta.UpvotedByUserName == nil {
			meta.UpvotedByUserName = []string{}
		}
		fb.ActionItemMeta = &meta
	}
	return fb, nil
}

func toFeedbackModels(rows []sqlc.Feedback) ([]model.Feedback, error) {
	out := make([]model.Feedback, 0, len(rows))
	for _, row := range rows {
		fb, err := toFeedbackModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *fb)
	}
	return out, nil
}
