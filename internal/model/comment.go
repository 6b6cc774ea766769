package model

import "time"

type Comment struct {
	ID         int64     `json:"id,string"`
	FeedbackID int64     `json:"feedbackId,string"`
	Author     string    `json:"author"`
	Message    string    `json:"message"`
	Avatar     string    `json:"avatar"`
	CreatedAt  time.Time `json:"createdAt"`
}
