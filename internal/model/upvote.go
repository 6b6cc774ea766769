package model

import "time"

// Upvote is the join row behind a user's vote on a feedback item. At most one
// exists per (UserID, FeedbackID).
type Upvote struct {
	ID         int64     `json:"id,string"`
	UserID     string    `json:"userId"`
	FeedbackID int64     `json:"feedbackId,string"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UpvoteResult is the outcome of a toggle.
type UpvoteResult struct {
	FeedbackID  int64 `json:"feedbackId,string"`
	Voted       bool  `json:"voted"`
	UpvoteCount int32 `json:"upvoteCount"`
}
