package store

import (
	"context"

	"sprintsync.app/retro/core/db/sqlc"
	"sprintsync.app/retro/internal/model"
)

type commentStore struct {
	queries *sqlc.Queries
}

func newCommentStore(queries *sqlc.Queries) CommentStore {
	return &commentStore{queries: queries}
}

func (s *commentStore) Create(ctx context.Context, comment *model.Comment) error {
	row, err := s.queries.CreateComment(ctx, sqlc.CreateCommentParams{
		ID:         comment.ID,
		FeedbackID: comment.FeedbackID,
		Author:     comment.Author,
		Message:    comment.Message,
		Avatar:     comment.Avatar,
	})
	if err != nil {
		return mapErr(err)
	}
	*comment = *toCommentModel(row)
	return nil
}

func (s *commentStore) ListBySprint(ctx context.Context, sprintID int64) ([]model.Comment, error) {
	rows, err := s.queries.ListCommentsBySprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, *toCommentModel(row))
	}
	return comments, nil
}

func (s *commentStore) CountBySprint(ctx context.Context, sprintID int64) (int64, error) {
	return s.queries.CountCommentsBySprint(ctx, sprintID)
}

func toCommentModel(row sqlc.Comment) *model.Comment {
	return &model.Comment{
		ID:         row.ID,
		FeedbackID: row.FeedbackID,
		Author:     row.Author,
		Message:    row.Message,
		Avatar:     row.Avatar,
		CreatedAt:  row.CreatedAt.Time,
	}
}
