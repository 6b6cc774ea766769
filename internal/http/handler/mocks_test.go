package handler_test

import (
	"context"
	"time"

	"sprintsync.app/retro/internal/events"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/service"
)

type mockSprintService struct {
	createFn func(ctx context.Context, params service.CreateSprintParams) (*model.Sprint, error)
	getFn    func(ctx context.Context, sprintID int64) (*model.Sprint, error)
	listFn   func(ctx context.Context) ([]model.Sprint, error)
	countFn  func(ctx context.Context) (int64, error)
}

func (m *mockSprintService) Create(ctx context.Context, params service.CreateSprintParams) (*model.Sprint, error) {
	if m.createFn != nil {
		return m.createFn(ctx, params)
	}
	return nil, nil
}

func (m *mockSprintService) Get(ctx context.Context, sprintID int64) (*model.Sprint, error) {
	if m.getFn != nil {
		return m.getFn(ctx, sprintID)
	}
	return &model.Sprint{ID: sprintID}, nil
}

func (m *mockSprintService) List(ctx context.Context) ([]model.Sprint, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockSprintService) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockSummaryService struct {
	boardSummaryFn func(ctx context.Context, sprintID int64) (*model.BoardSummary, error)
}

func (m *mockSummaryService) BoardSummary(ctx context.Context, sprintID int64) (*model.BoardSummary, error) {
	if m.boardSummaryFn != nil {
		return m.boardSummaryFn(ctx, sprintID)
	}
	return &model.BoardSummary{SprintID: sprintID}, nil
}

type mockFeedbackService struct {
	addFn            func(ctx context.Context, params service.AddFeedbackParams) (*model.Feedback, error)
	listFn           func(ctx context.Context, sprintID int64, category *model.Category) ([]model.Feedback, error)
	updateCategoryFn func(ctx context.Context, feedbackID int64, category model.Category) (*model.Feedback, error)
}

func (m *mockFeedbackService) Add(ctx context.Context, params service.AddFeedbackParams) (*model.Feedback, error) {
	if m.addFn != nil {
		return m.addFn(ctx, params)
	}
	return nil, nil
}

func (m *mockFeedbackService) List(ctx context.Context, sprintID int64, category *model.Category) ([]model.Feedback, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sprintID, category)
	}
	return nil, nil
}

func (m *mockFeedbackService) UpdateCategory(ctx context.Context, feedbackID int64, category model.Category) (*model.Feedback, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, feedbackID, category)
	}
	return nil, nil
}

type mockCommentService struct {
	addFn   func(ctx context.Context, params service.AddCommentParams) (*model.Comment, error)
	listFn  func(ctx context.Context, sprintID int64) ([]model.Comment, error)
	countFn func(ctx context.Context, sprintID int64) (int64, error)
}

func (m *mockCommentService) Add(ctx context.Context, params service.AddCommentParams) (*model.Comment, error) {
	if m.addFn != nil {
		return m.addFn(ctx, params)
	}
	return nil, nil
}

func (m *mockCommentService) List(ctx context.Context, sprintID int64) ([]model.Comment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sprintID)
	}
	return nil, nil
}

func (m *mockCommentService) Count(ctx context.Context, sprintID int64) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, sprintID)
	}
	return 0, nil
}

type mockUpvoteService struct {
	toggleFn func(ctx context.Context, params service.ToggleUpvoteParams) (*model.UpvoteResult, error)
	listFn   func(ctx context.Context, sprintID int64) ([]model.Upvote, error)
	countFn  func(ctx context.Context, sprintID int64) (int64, error)
}

func (m *mockUpvoteService) Toggle(ctx context.Context, params service.ToggleUpvoteParams) (*model.UpvoteResult, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, params)
	}
	return nil, nil
}

func (m *mockUpvoteService) List(ctx context.Context, sprintID int64) ([]model.Upvote, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sprintID)
	}
	return nil, nil
}

func (m *mockUpvoteService) Count(ctx context.Context, sprintID int64) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, sprintID)
	}
	return 0, nil
}

type mockActionItemService struct {
	toggleFn       func(ctx context.Context, params service.ToggleActionItemParams) (*model.Feedback, error)
	toggleUpvoteFn func(ctx context.Context, feedbackID int64, userID string) (*model.ActionItemMeta, error)
	listFn         func(ctx context.Context, sprintID int64) ([]model.Feedback, error)
	countFn        func(ctx context.Context, sprintID int64) (int64, error)
}

func (m *mockActionItemService) Toggle(ctx context.Context, params service.ToggleActionItemParams) (*model.Feedback, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, params)
	}
	return nil, nil
}

func (m *mockActionItemService) ToggleUpvote(ctx context.Context, feedbackID int64, userID string) (*model.ActionItemMeta, error) {
	if m.toggleUpvoteFn != nil {
		return m.toggleUpvoteFn(ctx, feedbackID, userID)
	}
	return nil, nil
}

func (m *mockActionItemService) List(ctx context.Context, sprintID int64) ([]model.Feedback, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sprintID)
	}
	return nil, nil
}

func (m *mockActionItemService) Count(ctx context.Context, sprintID int64) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, sprintID)
	}
	return 0, nil
}

type mockSubscriber struct {
	readFn func(ctx context.Context, sprintID int64, lastID string, block time.Duration) ([]events.Message, error)
}

func (m *mockSubscriber) Read(ctx context.Context, sprintID int64, lastID string, block time.Duration) ([]events.Message, error) {
	if m.readFn != nil {
		return m.readFn(ctx, sprintID, lastID, block)
	}
	<-ctx.Done()
	return nil, ctx.Err()
}
