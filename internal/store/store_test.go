//go:build integration

package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sprintsync.app/retro/common/id"
	"sprintsync.app/retro/core/db/sqlc"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/store"
)

var _ = Describe("Postgres stores", func() {
	var (
		ctx    context.Context
		stores *store.Stores
		sprint *model.Sprint
	)

	newFeedback := func(category model.Category) *model.Feedback {
		fb := &model.Feedback{
			ID:       id.New(),
			SprintID: sprint.ID,
			Author:   "Alice",
			Category: category,
			Message:  "Add more tests",
			Avatar:   "https://cdn.example.com/alice.png",
		}
		Expect(stores.Feedbacks().Create(ctx, fb)).To(Succeed())
		return fb
	}

	BeforeEach(func() {
		ctx = context.Background()
		stores = store.NewStores(database.Queries())

		sprint = &model.Sprint{ID: id.New(), Name: "Sprint 42", ProjectName: "Web", CreatedBy: "Bob"}
		Expect(stores.Sprints().Create(ctx, sprint)).To(Succeed())
	})

	Describe("sprints", func() {
		It("round-trips and counts", func() {
			got, err := stores.Sprints().GetByID(ctx, sprint.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Sprint 42"))
			Expect(got.CreatedAt).NotTo(BeZero())

			n, err := stores.Sprints().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeNumerically(">=", 1))
		})

		It("returns ErrNotFound for an unknown id", func() {
			_, err := stores.Sprints().GetByID(ctx, id.New())
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("feedbacks", func() {
		It("starts with zero counters and no action item", func() {
			fb := newFeedback(model.CategoryWentWell)
			Expect(fb.CommentCount).To(BeZero())
			Expect(fb.UpvoteCount).To(BeZero())
			Expect(fb.ActionItem).To(BeFalse())
			Expect(fb.ActionItemMeta).To(BeNil())
		})

		It("rejects a category outside the enum at the database", func() {
			err := stores.Feedbacks().Create(ctx, &model.Feedback{
				ID: id.New(), SprintID: sprint.ID, Author: "A", Category: "Random", Message: "m", Avatar: "a",
			})
			Expect(err).To(HaveOccurred())
		})

		It("filters by category after recategorization", func() {
			fb := newFeedback(model.CategoryWentWell)
			_, err := stores.Feedbacks().UpdateCategory(ctx, fb.ID, model.CategorySuggestions)
			Expect(err).NotTo(HaveOccurred())

			suggestions := model.CategorySuggestions
			list, err := stores.Feedbacks().ListBySprint(ctx, sprint.ID, &suggestions)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].ID).To(Equal(fb.ID))

			wentWell := model.CategoryWentWell
			list, err = stores.Feedbacks().ListBySprint(ctx, sprint.ID, &wentWell)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("stores and clears action item meta", func() {
			fb := newFeedback(model.CategoryWentBadly)

			meta := model.NewActionItemMeta("u1", "Ada")
			meta.ToggleUpvote("u2")
			updated, err := stores.Feedbacks().SetActionItem(ctx, fb.ID, meta)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ActionItem).To(BeTrue())
			Expect(updated.ActionItemMeta).To(Equal(meta))

			n, err := stores.Feedbacks().CountActionItems(ctx, sprint.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))

			cleared, err := stores.Feedbacks().SetActionItem(ctx, fb.ID, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cleared.ActionItem).To(BeFalse())
			Expect(cleared.ActionItemMeta).To(BeNil())
		})
	})

	Describe("comments and upvotes", func() {
		It("recounts from child rows", func() {
			fb := newFeedback(model.CategorySuggestions)
			for i := 0; i < 3; i++ {
				Expect(stores.Comments().Create(ctx, &model.Comment{
					ID: id.New(), FeedbackID: fb.ID, Author: "Carol", Message: "agreed",
				})).To(Succeed())
			}
			n, err := stores.Feedbacks().RecountComments(ctx, fb.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int32(3)))

			total, err := stores.Comments().CountBySprint(ctx, sprint.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
		})

		It("enforces one upvote per user and feedback", func() {
			fb := newFeedback(model.CategorySuggestions)
			Expect(stores.Upvotes().Create(ctx, &model.Upvote{ID: id.New(), UserID: "u1", FeedbackID: fb.ID})).To(Succeed())

			err := stores.Upvotes().Create(ctx, &model.Upvote{ID: id.New(), UserID: "u1", FeedbackID: fb.ID})
			Expect(err).To(MatchError(store.ErrDuplicate))

			up, err := stores.Upvotes().Get(ctx, "u1", fb.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stores.Upvotes().Delete(ctx, up.ID)).To(Succeed())

			_, err = stores.Upvotes().Get(ctx, "u1", fb.ID)
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("transactions", func() {
		It("rolls back the child row when the callback fails", func() {
			fb := newFeedback(model.CategoryWentWell)

			err := database.WithTx(ctx, func(q *sqlc.Queries) error {
				tx := store.NewStores(q)
				if _, err := tx.Feedbacks().GetForUpdate(ctx, fb.ID); err != nil {
					return err
				}
				if err := tx.Upvotes().Create(ctx, &model.Upvote{ID: id.New(), UserID: "u9", FeedbackID: fb.ID}); err != nil {
					return err
				}
				return store.ErrDuplicate
			})
			Expect(err).To(MatchError(store.ErrDuplicate))

			_, err = stores.Upvotes().Get(ctx, "u9", fb.ID)
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("counter reconciliation", func() {
		It("repairs drifted counters", func() {
			fb := newFeedback(model.CategoryWentWell)
			Expect(stores.Upvotes().Create(ctx, &model.Upvote{ID: id.New(), UserID: "u1", FeedbackID: fb.ID})).To(Succeed())

			fixed, err := stores.Counters().ReconcileUpvoteCounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fixed).To(BeNumerically(">=", 1))

			got, err := stores.Feedbacks().GetByID(ctx, fb.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.UpvoteCount).To(Equal(int32(1)))

			fixed, err = stores.Counters().ReconcileUpvoteCounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fixed).To(BeZero())
		})
	})

	Describe("schema migrations", func() {
		It("records the applied version and skips it on a second run", func() {
			version, err := database.SchemaVersion(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal(int64(1)))

			Expect(database.Migrate(ctx)).To(Succeed())

			again, err := database.SchemaVersion(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(version))

			count, err := stores.Sprints().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeNumerically(">=", 1))
		})
	})
})
