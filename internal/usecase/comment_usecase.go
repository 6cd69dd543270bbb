package usecase

import (
	"context"
	"errors"
	"strconv"

	"dietary-advisor/internal/converter"
	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/domain/entity"
	"dietary-advisor/internal/domain/repository"
	"dietary-advisor/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCommentProfileNotFound = errors.New("profile not found for comment")
	ErrParentCommentNotFound  = errors.New("parent comment not found")
	ErrParentCommentMismatch  = errors.New("parent comment belongs to another profile")
)

const (
	pgForeignKeyViolation = "23503"
	parentCommentFK       = "fk_comments_parent_comment"
)

type CommentUsecase interface {
	AddComment(ctx context.Context, healthProfileID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	CommentsForProfile(ctx context.Context, healthProfileID int64) ([]dto.CommentResponse, error)
	RepliesForComment(ctx context.Context, parentCommentID int64) ([]dto.CommentResponse, error)
	ReplyCounts(ctx context.Context, healthProfileID int64) (map[int64]int64, error)
}

type commentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.HealthProfileRepository
	commentRepo  repository.CommentRepository
	auditService service.AuditService
}

func NewCommentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.HealthProfileRepository,
	commentRepo repository.CommentRepository,
	auditService service.AuditService,
) CommentUsecase {
	return &commentUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		commentRepo:  commentRepo,
		auditService: auditService,
	}
}

// AddComment attaches a comment to a saved profile. A reply must point at a comment of the same profile.
func (u *commentUsecase) AddComment(ctx context.Context, healthProfileID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	profile, err := u.profileRepo.FindByID(ctx, u.db, healthProfileID)
	if err != nil {
		u.log.Warnf("Failed to find health profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrCommentProfileNotFound
	}

	if req.ParentCommentID != nil {
		parent, err := u.commentRepo.FindByID(ctx, u.db, *req.ParentCommentID)
		if err != nil {
			u.log.Warnf("Failed to find parent comment: %+v", err)
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentCommentNotFound
		}
		if parent.HealthProfileID != healthProfileID {
			return nil, ErrParentCommentMismatch
		}
	}

	comment := &entity.Comment{
		HealthProfileID: healthProfileID,
		ParentCommentID: req.ParentCommentID,
		AuthorName:      req.AuthorName,
		Content:         req.Content,
	}

	if err := u.commentRepo.Create(ctx, u.db, comment); err != nil {
		if mapped := mapForeignKeyViolation(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create comment: %+v", err)
		return nil, err
	}

	res := converter.CommentToResponse(comment)

	// Audit log
	if err := u.auditService.LogCreate(ctx, u.db, entity.AuditActionCommentCreate, "comment", strconv.FormatInt(comment.ID, 10), res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

// mapForeignKeyViolation covers a profile or parent deleted between the existence checks and the insert.
func mapForeignKeyViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		if pgErr.ConstraintName == parentCommentFK {
			return ErrParentCommentNotFound
		}
		return ErrCommentProfileNotFound
	}
	return nil
}

// CommentsForProfile returns every comment of the profile, replies included, newest first.
func (u *commentUsecase) CommentsForProfile(ctx context.Context, healthProfileID int64) ([]dto.CommentResponse, error) {
	comments, err := u.commentRepo.FindByHealthProfileID(ctx, u.db, healthProfileID)
	if err != nil {
		u.log.Warnf("Failed to find comments: %+v", err)
		return nil, err
	}

	return converter.CommentsToResponses(comments), nil
}

func (u *commentUsecase) RepliesForComment(ctx context.Context, parentCommentID int64) ([]dto.CommentResponse, error) {
	replies, err := u.commentRepo.FindReplies(ctx, u.db, parentCommentID)
	if err != nil {
		u.log.Warnf("Failed to find replies: %+v", err)
		return nil, err
	}

	return converter.CommentsToResponses(replies), nil
}

// ReplyCounts maps every top-level comment of the profile to its number of direct replies.
func (u *commentUsecase) ReplyCounts(ctx context.Context, healthProfileID int64) (map[int64]int64, error) {
	comments, err := u.commentRepo.FindByHealthProfileID(ctx, u.db, healthProfileID)
	if err != nil {
		u.log.Warnf("Failed to find comments: %+v", err)
		return nil, err
	}

	counts, err := u.commentRepo.CountRepliesByHealthProfileID(ctx, u.db, healthProfileID)
	if err != nil {
		u.log.Warnf("Failed to count replies: %+v", err)
		return nil, err
	}

	result := make(map[int64]int64)
	for _, comment := range comments {
		if !comment.IsReply() {
			result[comment.ID] = counts[comment.ID]
		}
	}

	return result, nil
}
