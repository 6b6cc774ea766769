package store

import (
	"context"

	"sprintsync.app/retro/core/db/sqlc"
	"sprintsync.app/retro/internal/model"
)

type upvoteStore struct {
	queries *sqlc.Queries
}

func newUpvoteStore(queries *sqlc.Queries) UpvoteStore {
	return &upvoteStore{queries: queries}
}

func (s *upvoteStore) Get(ctx context.Context, userID string, feedbackID int64) (*model.Upvote, error) {
	row, err := s.queries.GetUpvote(ctx, sqlc.GetUpvoteParams{
		UserID:     userID,
		FeedbackID: feedbackID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toUpvoteModel(row), nil
}

func (s *upvoteStore) Create(ctx context.Context, upvote *model.Upvote) error {
	row, err := s.queries.CreateUpvote(ctx, sqlc.CreateUpvoteParams{
		ID:         upvote.ID,
		UserID:     upvote.UserID,
		FeedbackID: upvote.FeedbackID,
	})
	if err != nil {
		return mapErr(err)
	}
	*upvote = *toUpvoteModel(row)
	return nil
}

func (s *upvoteStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteUpvote(ctx, id)
}

func (s *upvoteStore) ListBySprint(ctx context.Context, sprintID int64) ([]model.Upvote, error) {
	rows, err := s.queries.ListUpvotesBySprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	upvotes := make([]model.Upvote, 0, len(rows))
	for _, row := range rows {
		upvotes = append(upvotes, *toUpvoteModel(row))
	}
	return upvotes, nil
}

func (s *upvoteStore) CountBySprint(ctx context.Context, sprintID int64) (int64, error) {
	return s.queries.CountUpvotesBySprint(ctx, sprintID)
}

func toUpvoteModel(row sqlc.Upvote) *model.Upvote {
	return &model.Upvote{
		ID:         row.ID,
		UserID:     row.UserID,
		FeedbackID: row.FeedbackID,
		CreatedAt:  row.CreatedAt.Time,
	}
}
