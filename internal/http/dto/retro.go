package dto

import (
	"time"

	"sprintsync.app/retro/internal/model"
)

// Ids travel as decimal strings: snowflake values exceed what JavaScript
// numbers represent exactly.

type AddSprintRequest struct {
	SprintName  string `json:"sprintName" binding:"required,max=200"`
	ProjectName string `json:"projectName" binding:"required,max=200"`
	CreatedBy   string `json:"createdBy" binding:"required,max=200"`
}

type SprintScopedRequest struct {
	SprintID int64 `json:"sprintId,string" binding:"required,gt=0"`
}

type ListFeedbackRequest struct {
	SprintID int64   `json:"sprintId,string" binding:"required,gt=0"`
	Category *string `json:"category,omitempty" binding:"omitempty,retro_category"`
}

type AddFeedbackRequest struct {
	SprintID int64  `json:"sprintId,string" binding:"required,gt=0"`
	Author   string `json:"author" binding:"required,max=200"`
	Category string `json:"category" binding:"required,retro_category"`
	Message  string `json:"message" binding:"required,max=5000"`
	Avatar   string `json:"avatar" binding:"required,max=2048"`
}

type UpdateCategoryRequest struct {
	Category string `json:"category" binding:"required,retro_category"`
}

type AddCommentRequest struct {
	SprintID   int64  `json:"sprintId,string,omitempty"`
	FeedbackID int64  `json:"feedbackId,string" binding:"required,gt=0"`
	Author     string `json:"author" binding:"required,max=200"`
	Message    string `json:"message" binding:"required,max=5000"`
	Avatar     string `json:"avatar,omitempty" binding:"max=2048"`
}

type ToggleUpvoteRequest struct {
	SprintID   int64  `json:"sprintId,string,omitempty"`
	UserID     string `json:"userId" binding:"required,max=200"`
	FeedbackID int64  `json:"feedbackId,string" binding:"required,gt=0"`
}

type ToggleActionItemRequest struct {
	SprintID   int64  `json:"sprintId,string,omitempty"`
	FeedbackID int64  `json:"feedbackId,string" binding:"required,gt=0"`
	UserID     string `json:"userId" binding:"required,max=200"`
	UserName   string `json:"userName" binding:"required,max=200"`
}

type ToggleActionItemUpvoteRequest struct {
	FeedbackID int64  `json:"feedbackId,string" binding:"required,gt=0"`
	UserID     string `json:"userId" binding:"required,max=200"`
}

type SprintResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	ProjectName string    `json:"projectName"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToSprintResponse(s *model.Sprint) *SprintResponse {
	return &SprintResponse{
		ID:          s.ID,
		Name:        s.Name,
		ProjectName: s.ProjectName,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ToSprintResponses(sprints []model.Sprint) []SprintResponse {
	out := make([]SprintResponse, 0, len(sprints))
	for i := range sprints {
		out = append(out, *ToSprintResponse(&sprints[i]))
	}
	return out
}

type FeedbackResponse struct {
	ID             int64                 `json:"id,string"`
	SprintID       int64                 `json:"sprintId,string"`
	Author         string                `json:"author"`
	Category       model.Category        `json:"category"`
	Message        string                `json:"message"`
	Avatar         string                `json:"avatar"`
	CommentCount   int32                 `json:"commentCount"`
	UpvoteCount    int32                 `json:"upvoteCount"`
	ActionItem     bool                  `json:"actionItem"`
	ActionItemMeta *model.ActionItemMeta `json:"actionItemMeta"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func ToFeedbackResponse(fb *model.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:             fb.ID,
		SprintID:       fb.SprintID,
		Author:         fb.Author,
		Category:       fb.Category,
		Message:        fb.Message,
		Avatar:         fb.Avatar,
		CommentCount:   fb.CommentCount,
		UpvoteCount:    fb.UpvoteCount,
		ActionItem:     fb.ActionItem,
		ActionItemMeta: fb.ActionItemMeta,
		CreatedAt:      fb.CreatedAt,
		UpdatedAt:      fb.UpdatedAt,
	}
}

func ToFeedbackResponses(feedbacks []model.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, *ToFeedbackResponse(&feedbacks[i]))
	}
	return out
}

type CommentResponse struct {
	ID         int64     `json:"id,string"`
	FeedbackID int64     `json:"feedbackId,string"`
	Author     string    `json:"author"`
	Message    string    `json:"message"`
	Avatar     string    `json:"avatar"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToCommentResponse(c *model.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         c.ID,
		FeedbackID: c.FeedbackID,
		Author:     c.Author,
		Message:    c.Message,
		Avatar:     c.Avatar,
		CreatedAt:  c.CreatedAt,
	}
}

func ToCommentResponses(comments []model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *ToCommentResponse(&comments[i]))
	}
	return out
}

type UpvoteResponse struct {
	ID         int64     `json:"id,string"`
	UserID     string    `json:"userId"`
	FeedbackID int64     `json:"feedbackId,string"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToUpvoteResponses(upvotes []model.Upvote) []UpvoteResponse {
	out := make([]UpvoteResponse, 0, len(upvotes))
	for _, u := range upvotes {
		out = append(out, UpvoteResponse{
			ID:         u.ID,
			UserID:     u.UserID,
			FeedbackID: u.FeedbackID,
			CreatedAt:  u.CreatedAt,
		})
	}
	return out
}

type UpvoteToggleResponse struct {
	FeedbackID  int64 `json:"feedbackId,string"`
	Voted       bool  `json:"voted"`
	UpvoteCount int32 `json:"upvoteCount"`
}

func ToUpvoteToggleResponse(r *model.UpvoteResult) *UpvoteToggleResponse {
	return &UpvoteToggleResponse{
		FeedbackID:  r.FeedbackID,
		Voted:       r.Voted,
		UpvoteCount: r.UpvoteCount,
	}
}

type BoardSummaryResponse struct {
	SprintID        int64 `json:"sprintId,string"`
	FeedbackCount   int64 `json:"feedbackCount"`
	CommentCount    int64 `json:"commentCount"`
	UpvoteCount     int64 `json:"upvoteCount"`
	ActionItemCount int64 `json:"actionItemCount"`
}

func ToBoardSummaryResponse(s *model.BoardSummary) *BoardSummaryResponse {
	return &BoardSummaryResponse{
		SprintID:        s.SprintID,
		FeedbackCount:   s.FeedbackCount,
		CommentCount:    s.CommentCount,
		UpvoteCount:     s.UpvoteCount,
		ActionItemCount: s.ActionItemCount,
	}
}
