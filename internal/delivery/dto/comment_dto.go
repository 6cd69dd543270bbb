package dto

import (
	"strings"
	"time"
)

// Request DTOs

type CreateCommentRequest struct {
	AuthorName      string `json:"authorName" validate:"required,max=100"`
	Content         string `json:"content" validate:"required,max=2000"`
	ParentCommentID *int64 `json:"parentCommentId" validate:"omitempty,gt=0"`
}

func (r *CreateCommentRequest) Normalize() {
	r.AuthorName = strings.TrimSpace(r.AuthorName)
	r.Content = strings.TrimSpace(r.Content)
}

// Response DTOs

type CommentResponse struct {
	ID              int64     `json:"id"`
	HealthProfileID int64     `json:"healthProfileId"`
	ParentCommentID *int64    `json:"parentCommentId"`
	AuthorName      string    `json:"authorName"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
}
