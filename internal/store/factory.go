package store

import (
	"sprintsync.app/retro/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Sprints() SprintStore {
	return newSprintStore(s.queries)
}

func (s *Stores) Feedbacks() FeedbackStore {
	return newFeedbackStore(s.queries)
}

func (s *Stores) Comments() CommentStore {
	return newCommentStore(s.queries)
}

func (s *Stores) Upvotes() UpvoteStore {
	return newUpvoteStore(s.queries)
}

func (s *Stores) Counters() CounterStore {
	return newCounterStore(s.queries)
}
