package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sprintsync.app/retro/common/id"
	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/common/metrics"
	"sprintsync.app/retro/common/sanitize"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/store"
)

type AddCommentParams struct {
	SprintID   int64 // optional; when set it must match the feedback's sprint
	FeedbackID int64
	Author     string
	Message    string
	Avatar     string // optional
}

// CommentService attaches comments to feedback and keeps commentCount equal
// to the number of comment rows.
type CommentService interface {
	Add(ctx context.Context, params AddCommentParams) (*model.Comment, error)
	List(ctx context.Context, sprintID int64) ([]model.Comment, error)
	Count(ctx context.Context, sprintID int64) (int64, error)
}

type commentService struct {
	txRunner  TxRunner
	comments  store.CommentStore
	publisher EventPublisher
}

func NewCommentService(txRunner TxRunner, comments store.CommentStore, publisher EventPublisher) CommentService {
	return &commentService{
		txRunner:  txRunner,
		comments:  comments,
		publisher: publisher,
	}
}

func (s *commentService) Add(ctx context.Context, params AddCommentParams) (*model.Comment, error) {
	comment, err := s.add(ctx, params)
	metrics.ObserveMutation("add_comment", err)
	return comment, err
}

func (s *commentService) add(ctx context.Context, params AddCommentParams) (*model.Comment, error) {
	if err := requireID("feedbackId", params.FeedbackID); err != nil {
		return nil, err
	}
	author, err := requireText("author", params.Author, maxNameLen)
	if err != nil {
		return nil, err
	}
	message, err := requireText("message", params.Message, maxMessageLen)
	if err != nil {
		return nil, err
	}
	avatar := ""
	if strings.TrimSpace(params.Avatar) != "" {
		if avatar = sanitize.URL(params.Avatar); avatar == "" {
			return nil, newValidationError("avatar", "must be an http(s) or site-relative URL")
		}
	}

	var (
		comment  *model.Comment
		sprintID int64
		count    int32
	)
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		fb, err := lockFeedback(ctx, stores, params.FeedbackID, params.SprintID)
		if err != nil {
			return err
		}
		sprintID = fb.SprintID

		comment = &model.Comment{
			ID:         id.New(),
			FeedbackID: fb.ID,
			Author:     author,
			Message:    message,
			Avatar:     avatar,
		}
		if err := stores.Comments().Create(ctx, comment); err != nil {
			return fmt.Errorf("creating comment: %w", err)
		}

		count, err = stores.Feedbacks().RecountComments(ctx, fb.ID)
		if err != nil {
			return fmt.Errorf("recounting comments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SprintID:   &sprintID,
		FeedbackID: &comment.FeedbackID,
		Component:  "retro.service.comment",
	})
	slog.InfoContext(ctx, "comment added", "comment_count", count)

	publish(ctx, s.publisher, model.BoardEvent{
		Type:       model.EventCommentCreated,
		SprintID:   sprintID,
		FeedbackID: comment.FeedbackID,
	})
	return comment, nil
}

func (s *commentService) List(ctx context.Context, sprintID int64) ([]model.Comment, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListBySprint(ctx, sprintID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Count(ctx context.Context, sprintID int64) (int64, error) {
	if err := requireID("sprintId", sprintID); err != nil {
		return 0, err
	}
	n, err := s.comments.CountBySprint(ctx, sprintID)
	if err != nil {
		return 0, fmt.Errorf("counting comments: %w", err)
	}
	return n, nil
}
