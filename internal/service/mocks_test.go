package service_test

import (
	"context"
	"errors"
	"sync"

	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/service"
	"sprintsync.app/retro/internal/store"
)

type mockSprintStore struct {
	createFn  func(ctx context.Context, sprint *model.Sprint) error
	getByIDFn func(ctx context.Context, id int64) (*model.Sprint, error)
	listFn    func(ctx context.Context) ([]model.Sprint, error)
	countFn   func(ctx context.Context) (int64, error)
}

func (m *mockSprintStore) Create(ctx context.Context, sprint *model.Sprint) error {
	if m.createFn != nil {
		return m.createFn(ctx, sprint)
	}
	return nil
}

func (m *mockSprintStore) GetByID(ctx context.Context, id int64) (*model.Sprint, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.Sprint{ID: id}, nil
}

func (m *mockSprintStore) List(ctx context.Context) ([]model.Sprint, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockSprintStore) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockFeedbackStore struct {
	getForUpdateFn    func(ctx context.Context, id int64) (*model.Feedback, error)
	updateCategoryFn  func(ctx context.Context, id int64, category model.Category) (*model.Feedback, error)
	setActionItemFn   func(ctx context.Context, id int64, meta *model.ActionItemMeta) (*model.Feedback, error)
	recountUpvotesFn  func(ctx context.Context, id int64) (int32, error)
	recountCommentsFn func(ctx context.Context, id int64) (int32, error)
	countBySprintFn   func(ctx context.Context, sprintID int64) (int64, error)
}

func (m *mockFeedbackStore) Create(_ context.Context, _ *model.Feedback) error {
	return nil
}

func (m *mockFeedbackStore) GetByID(_ context.Context, _ int64) (*model.Feedback, error) {
	return nil, store.ErrNotFound
}

func (m *mockFeedbackStore) GetForUpdate(ctx context.Context, id int64) (*model.Feedback, error) {
	if m.getForUpdateFn != nil {
		return m.getForUpdateFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockFeedbackStore) ListBySprint(_ context.Context, _ int64, _ *model.Category) ([]model.Feedback, error) {
	return nil, nil
}

func (m *mockFeedbackStore) CountBySprint(ctx context.Context, sprintID int64) (int64, error) {
	if m.countBySprintFn != nil {
		return m.countBySprintFn(ctx, sprintID)
	}
	return 0, nil
}

func (m *mockFeedbackStore) UpdateCategory(ctx context.Context, id int64, category model.Category) (*model.Feedback, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, id, category)
	}
	return nil, store.ErrNotFound
}

func (m *mockFeedbackStore) SetActionItem(ctx context.Context, id int64, meta *model.ActionItemMeta) (*model.Feedback, error) {
	if m.setActionItemFn != nil {
		return m.setActionItemFn(ctx, id, meta)
	}
	return nil, store.ErrNotFound
}

func (m *mockFeedbackStore) RecountComments(ctx context.Context, id int64) (int32, error) {
	if m.recountCommentsFn != nil {
		return m.recountCommentsFn(ctx, id)
	}
	return 0, nil
}

func (m *mockFeedbackStore) RecountUpvotes(ctx context.Context, id int64) (int32, error) {
	if m.recountUpvotesFn != nil {
		return m.recountUpvotesFn(ctx, id)
	}
	return 0, nil
}

func (m *mockFeedbackStore) ListActionItems(_ context.Context, _ int64) ([]model.Feedback, error) {
	return nil, nil
}

func (m *mockFeedbackStore) CountActionItems(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

type mockUpvoteStore struct {
	getFn    func(ctx context.Context, userID string, feedbackID int64) (*model.Upvote, error)
	createFn func(ctx context.Context, upvote *model.Upvote) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockUpvoteStore) Get(ctx context.Context, userID string, feedbackID int64) (*model.Upvote, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, feedbackID)
	}
	return nil, store.ErrNotFound
}

func (m *mockUpvoteStore) Create(ctx context.Context, upvote *model.Upvote) error {
	if m.createFn != nil {
		return m.createFn(ctx, upvote)
	}
	return nil
}

func (m *mockUpvoteStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUpvoteStore) ListBySprint(_ context.Context, _ int64) ([]model.Upvote, error) {
	return nil, nil
}

func (m *mockUpvoteStore) CountBySprint(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

type mockStoreProvider struct {
	sprints   store.SprintStore
	feedbacks store.FeedbackStore
	comments  store.CommentStore
	upvotes   store.UpvoteStore
}

func (m *mockStoreProvider) Sprints() store.SprintStore     { return m.sprints }
func (m *mockStoreProvider) Feedbacks() store.FeedbackStore { return m.feedbacks }
func (m *mockStoreProvider) Comments() store.CommentStore   { return m.comments }
func (m *mockStoreProvider) Upvotes() store.UpvoteStore     { return m.upvotes }

type mockTxRunner struct {
	provider *mockStoreProvider
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	if m.provider != nil {
		return fn(m.provider)
	}
	return fn(&mockStoreProvider{})
}

// recordingPublisher captures events; err, when set, is returned from Publish.
type recordingPublisher struct {
	mu     sync.Mutex
	events []model.BoardEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event model.BoardEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Types() []model.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]model.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

var errStoreDown = errors.New("connection refused")
