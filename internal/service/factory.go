package service

import (
	"sprintsync.app/retro/core/config"
	"sprintsync.app/retro/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	publisher EventPublisher
	boardCfg  config.BoardConfig
}

func NewServices(stores *store.Stores, txRunner TxRunner, publisher EventPublisher, boardCfg config.BoardConfig) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		publisher: publisher,
		boardCfg:  boardCfg,
	}
}

func (s *Services) Sprints() SprintService {
	return NewSprintService(s.stores.Sprints(), s.publisher, s.boardCfg.AllowedProjects)
}

func (s *Services) Feedback() FeedbackService {
	return NewFeedbackService(s.stores.Sprints(), s.stores.Feedbacks(), s.publisher)
}

func (s *Services) Upvotes() UpvoteService {
	return NewUpvoteService(s.txRunner, s.stores.Upvotes(), s.publisher)
}

func (s *Services) Comments() CommentService {
	return NewCommentService(s.txRunner, s.stores.Comments(), s.publisher)
}

func (s *Services) ActionItems() ActionItemService {
	return NewActionItemService(s.txRunner, s.stores.Feedbacks(), s.publisher, s.boardCfg.StrictActionItemOwner)
}

func (s *Services) Summary() SummaryService {
	return NewSummaryService(s.stores.Sprints(), s.stores.Feedbacks(), s.stores.Comments(), s.stores.Upvotes())
}
