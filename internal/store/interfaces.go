package store

import (
	"context"
	"errors"

	"sprintsync.app/retro/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique constraint
var ErrDuplicate = errors.New("duplicate")

// SprintStore defines the contract for sprint data access
type SprintStore interface {
	Create(ctx context.Context, sprint *model.Sprint) error
	GetByID(ctx context.Context, id int64) (*model.Sprint, error)
	List(ctx context.Context) ([]model.Sprint, error)
	Count(ctx context.Context) (int64, error)
}

// FeedbackStore defines the contract for feedback data access.
// Recount* recompute the cached counter from child rows and persist it.
type FeedbackStore interface {
	Create(ctx context.Context, fb *model.Feedback) error
	GetByID(ctx context.Context, id int64) (*model.Feedback, error)
	GetForUpdate(ctx context.Context, id int64) (*model.Feedback, error) // row lock, use inside a tx
	ListBySprint(ctx context.Context, sprintID int64, category *model.Category) ([]model.Feedback, error)
	CountBySprint(ctx context.Context, sprintID int64) (int64, error)
	UpdateCategory(ctx context.Context, id int64, category model.Category) (*model.Feedback, error)
	SetActionItem(ctx context.Context, id int64, meta *model.ActionItemMeta) (*model.Feedback, error) // nil meta clears
	RecountComments(ctx context.Context, id int64) (int32, error)
	RecountUpvotes(ctx context.Context, id int64) (int32, error)
	ListActionItems(ctx context.Context, sprintID int64) ([]model.Feedback, error)
	CountActionItems(ctx context.Context, sprintID int64) (int64, error)
}

// CommentStore defines the contract for comment data access
type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListBySprint(ctx context.Context, sprintID int64) ([]model.Comment, error)
	CountBySprint(ctx context.Context, sprintID int64) (int64, error)
}

// UpvoteStore defines the contract for upvote data access
type UpvoteStore interface {
	Get(ctx context.Context, userID string, feedbackID int64) (*model.Upvote, error)
	Create(ctx context.Context, upvote *model.Upvote) error // ErrDuplicate on (user, feedback) conflict
	Delete(ctx context.Context, id int64) error
	ListBySprint(ctx context.Context, sprintID int64) ([]model.Upvote, error)
	CountBySprint(ctx context.Context, sprintID int64) (int64, error)
}

// CounterStore repairs cached feedback counters in bulk.
type CounterStore interface {
	ReconcileCommentCounts(ctx context.Context) (int64, error)
	ReconcileUpvoteCounts(ctx context.Context) (int64, error)
}
