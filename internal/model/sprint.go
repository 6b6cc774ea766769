package model

import "time"

// Sprint is the scoping key for every piece of retrospective data.
type Sprint struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	ProjectName string    `json:"projectName"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
