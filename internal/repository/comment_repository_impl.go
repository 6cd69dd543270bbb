package repository

import (
	"context"
	"errors"

	"dietary-advisor/internal/domain/entity"
	domainRepo "dietary-advisor/internal/domain/repository"

	"gorm.io/gorm"
)

type commentRepository struct{}

func NewCommentRepository() domainRepo.CommentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, db *gorm.DB, comment *entity.Comment) error {
	return db.WithContext(ctx).Omit("HealthProfile", "Parent").Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Comment, error) {
	var comment entity.Comment
	err := db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// FindByHealthProfileID returns top-level comments and replies alike, newest first.
func (r *commentRepository) FindByHealthProfileID(ctx context.Context, db *gorm.DB, healthProfileID int64) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := db.WithContext(ctx).
		Where("health_profile_id = ?", healthProfileID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindReplies(ctx context.Context, db *gorm.DB, parentCommentID int64) ([]entity.Comment, error) {
	var replies []entity.Comment
	err := db.WithContext(ctx).
		Where("parent_comment_id = ?", parentCommentID).
		Order("created_at DESC, id DESC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

type replyCount struct {
	ParentCommentID int64
	Total           int64
}

// CountRepliesByHealthProfileID maps each parent comment of the profile to its number of direct replies.
func (r *commentRepository) CountRepliesByHealthProfileID(ctx context.Context, db *gorm.DB, healthProfileID int64) (map[int64]int64, error) {
	var rows []replyCount
	err := db.WithContext(ctx).
		Model(&entity.Comment{}).
		Select("parent_comment_id, COUNT(*) AS total").
		Where("health_profile_id = ? AND parent_comment_id IS NOT NULL", healthProfileID).
		Group("parent_comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.ParentCommentID] = row.Total
	}
	return counts, nil
}
