package events

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"sprintsync.app/retro/internal/model"
)

var _ = Describe("board streams", func() {
	It("should name one stream per sprint", func() {
		Expect(StreamName(1234567890123)).To(Equal("retro:sprint-1234567890123"))
	})

	It("should round-trip an event through stream fields", func() {
		event := model.BoardEvent{
			Type:       model.EventUpvoteToggled,
			SprintID:   1811111111111111111,
			FeedbackID: 1822222222222222222,
			UserID:     "u1",
			At:         time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		}

		values, err := encode(event)
		Expect(err).NotTo(HaveOccurred())
		Expect(values[fieldType]).To(Equal("upvote.toggled"))
		Expect(values[fieldPayload]).To(ContainSubstring(`"sprintId":"1811111111111111111"`))

		msg, err := decode(redis.XMessage{ID: "1-0", Values: values})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1-0"))
		Expect(msg.Event).To(Equal(event))
	})

	It("should reject entries without a payload", func() {
		_, err := decode(redis.XMessage{ID: "2-0", Values: map[string]any{fieldType: "x"}})
		Expect(err).To(MatchError(ContainSubstring("no payload")))
	})

	It("should reject entries with a malformed payload", func() {
		_, err := decode(redis.XMessage{ID: "3-0", Values: map[string]any{fieldPayload: "{"}})
		Expect(err).To(HaveOccurred())
	})

	It("should drop events silently without Redis", func() {
		Expect(NopPublisher{}.Publish(context.Background(), model.BoardEvent{})).To(Succeed())
	})
})
