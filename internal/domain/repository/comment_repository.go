package repository

import (
	"context"

	"dietary-advisor/internal/domain/entity"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, db *gorm.DB, comment *entity.Comment) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Comment, error)
	FindByHealthProfileID(ctx context.Context, db *gorm.DB, healthProfileID int64) ([]entity.Comment, error)
	FindReplies(ctx context.Context, db *gorm.DB, parentCommentID int64) ([]entity.Comment, error)
	CountRepliesByHealthProfileID(ctx context.Context, db *gorm.DB, healthProfileID int64) (map[int64]int64, error)
}
