package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/service"
	"sprintsync.app/retro/internal/store"
)

var _ = Describe("UpvoteService", func() {
	var (
		ctx       context.Context
		feedbacks *mockFeedbackStore
		upvotes   *mockUpvoteStore
		txRunner  *mockTxRunner
		pub       *recordingPublisher
		svc       service.UpvoteService
	)

	BeforeEach(func() {
		ctx = context.Background()
		feedbacks = &mockFeedbackStore{
			getForUpdateFn: func(_ context.Context, id int64) (*model.Feedback, error) {
				return &model.Feedback{ID: id, SprintID: 10}, nil
			},
		}
		upvotes = &mockUpvoteStore{}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{feedbacks: feedbacks, upvotes: upvotes}}
		pub = &recordingPublisher{}
		svc = service.NewUpvoteService(txRunner, upvotes, pub)
	})

	It("should report a lost unique-constraint race as ErrConflict", func() {
		upvotes.createFn = func(_ context.Context, _ *model.Upvote) error {
			return store.ErrDuplicate
		}

		_, err := svc.Toggle(ctx, service.ToggleUpvoteParams{UserID: "u1", FeedbackID: 5})
		Expect(err).To(MatchError(service.ErrConflict))
		Expect(pub.Types()).To(BeEmpty())
	})

	It("should delete the existing vote and recount", func() {
		var deleted int64
		upvotes.getFn = func(_ context.Context, _ string, _ int64) (*model.Upvote, error) {
			return &model.Upvote{ID: 77, UserID: "u1", FeedbackID: 5}, nil
		}
		upvotes.deleteFn = func(_ context.Context, id int64) error {
			deleted = id
			return nil
		}
		feedbacks.recountUpvotesFn = func(_ context.Context, _ int64) (int32, error) { return 4, nil }

		res, err := svc.Toggle(ctx, service.ToggleUpvoteParams{UserID: "u1", FeedbackID: 5})
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(Equal(int64(77)))
		Expect(res.Voted).To(BeFalse())
		Expect(res.UpvoteCount).To(Equal(int32(4)))
		Expect(pub.events).To(HaveLen(1))
		Expect(pub.events[0].SprintID).To(Equal(int64(10)))
	})

	It("should surface a recount failure so the transaction rolls back", func() {
		feedbacks.recountUpvotesFn = func(_ context.Context, _ int64) (int32, error) { return 0, errStoreDown }

		_, err := svc.Toggle(ctx, service.ToggleUpvoteParams{UserID: "u1", FeedbackID: 5})
		Expect(err).To(MatchError(errStoreDown))
		Expect(err.Error()).To(ContainSubstring("recounting upvotes"))
	})

	It("should propagate transaction start failures", func() {
		txRunner.withTxFn = func(_ context.Context, _ func(stores service.StoreProvider) error) error {
			return errStoreDown
		}

		_, err := svc.Toggle(ctx, service.ToggleUpvoteParams{UserID: "u1", FeedbackID: 5})
		Expect(err).To(MatchError(errStoreDown))
	})

	It("should validate before opening a transaction", func() {
		opened := false
		txRunner.withTxFn = func(_ context.Context, _ func(stores service.StoreProvider) error) error {
			opened = true
			return nil
		}

		_, err := svc.Toggle(ctx, service.ToggleUpvoteParams{UserID: "u1"})
		_, ok := service.AsValidationError(err)
		Expect(ok).To(BeTrue())
		Expect(opened).To(BeFalse())
	})
})
