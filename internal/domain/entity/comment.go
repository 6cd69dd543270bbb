package entity

import (
	"time"
)

// Comment is a note attached to a health profile. A comment with a parent is a reply.
type Comment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HealthProfileID int64     `gorm:"not null;index" json:"health_profile_id"`
	ParentCommentID *int64    `gorm:"index" json:"parent_comment_id,omitempty"`
	AuthorName      string    `gorm:"type:varchar(100);not null" json:"author_name"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	HealthProfile *HealthProfile `gorm:"foreignKey:HealthProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Parent        *Comment       `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsReply checks if the comment answers another comment
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}
