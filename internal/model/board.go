package model

import "time"

// EventType names a board mutation pushed to live subscribers.
type EventType string

const (
	EventSprintCreated          EventType = "sprint.created"
	EventFeedbackCreated        EventType = "feedback.created"
	EventFeedbackRecategorized  EventType = "feedback.recategorized"
	EventCommentCreated         EventType = "comment.created"
	EventUpvoteToggled          EventType = "upvote.toggled"
	EventActionItemToggled      EventType = "action_item.toggled"
	EventActionItemUpvoteToggle EventType = "action_item.upvote_toggled"
)

// BoardEvent tells subscribers which part of a sprint board changed so they can
// refetch it. It deliberately carries ids, not entity snapshots.
type BoardEvent struct {
	Type       EventType `json:"type"`
	SprintID   int64     `json:"sprintId,string"`
	FeedbackID int64     `json:"feedbackId,string,omitempty"`
	UserID     string    `json:"userId,omitempty"`
	At         time.Time `json:"at"`
}

// BoardSummary aggregates the dashboard counts for one sprint.
type BoardSummary struct {
	SprintID        int64 `json:"sprintId,string"`
	FeedbackCount   int64 `json:"feedbackCount"`
	CommentCount    int64 `json:"commentCount"`
	UpvoteCount     int64 `json:"upvoteCount"`
	ActionItemCount int64 `json:"actionItemCount"`
}
