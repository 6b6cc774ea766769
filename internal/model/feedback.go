package model

import (
	"slices"
	"time"
)

// Category is the board column a feedback item sits in.
type Category string

const (
	CategoryWentWell    Category = "What Went Well"
	CategoryWentBadly   Category = "What Didn't Go Well"
	CategorySuggestions Category = "Suggestions"
)

// Categories lists the board columns in display order.
func Categories() []Category {
	return []Category{CategoryWentWell, CategoryWentBadly, CategorySuggestions}
}

func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// AnonymousAuthor is what the board shows for feedback submitted without a name.
const AnonymousAuthor = "Anonymous"

type Feedback struct {
	ID             int64           `json:"id,string"`
	SprintID       int64           `json:"sprintId,string"`
	Author         string          `json:"author"`
	Category       Category        `json:"category"`
	Message        string          `json:"message"`
	Avatar         string          `json:"avatar"`
	CommentCount   int32           `json:"commentCount"`
	UpvoteCount    int32           `json:"upvoteCount"`
	ActionItem     bool            `json:"actionItem"`
	ActionItemMeta *ActionItemMeta `json:"actionItemMeta"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ActionItemMeta is persisted as JSONB on the feedback row. It is nil whenever
// ActionItem is false.
type ActionItemMeta struct {
	AddedByUser       string   `json:"addedByUser"`
	AddedByUserName   string   `json:"addedByUserName"`
	UpvotedByUserName []string `json:"upvotedByUserName"`
}

// NewActionItemMeta starts an action item with an empty upvote pool.
func NewActionItemMeta(userID, userName string) *ActionItemMeta {
	return &ActionItemMeta{
		AddedByUser:       userID,
		AddedByUserName:   userName,
		UpvotedByUserName: []string{},
	}
}

// ToggleUpvote adds userID to the pool if absent and removes it otherwise.
// It reports whether userID is in the pool afterwards.
func (m *ActionItemMeta) ToggleUpvote(userID string) bool {
	if i := slices.Index(m.UpvotedByUserName, userID); i >= 0 {
		m.UpvotedByUserName = slices.Delete(m.UpvotedByUserName, i, i+1)
		return false
	}
	m.UpvotedByUserName = append(m.UpvotedByUserName, userID)
	return true
}
