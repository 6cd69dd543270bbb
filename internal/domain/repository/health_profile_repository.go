package repository

import (
	"context"

	"dietary-advisor/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.HealthProfile) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthProfile, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.HealthProfile, error)
	Search(ctx context.Context, db *gorm.DB, query string) ([]entity.HealthProfile, error)
}

// HealthProfileCache is a read-through cache in front of HealthProfileRepository.FindByID.
// Get returns nil, nil on a miss.
type HealthProfileCache interface {
	Get(ctx context.Context, id int64) (*entity.HealthProfile, error)
	Set(ctx context.Context, profile *entity.HealthProfile) error
}
