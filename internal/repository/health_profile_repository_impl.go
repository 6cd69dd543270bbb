package repository

import (
	"context"
	"errors"
	"strings"

	"dietary-advisor/internal/domain/entity"
	domainRepo "dietary-advisor/internal/domain/repository"

	"gorm.io/gorm"
)

// searchableProfileColumns are matched case-insensitively by Search.
var searchableProfileColumns = []string{
	"name",
	"dietary_habit",
	"health_problem",
	"medication",
	"daily_activities",
	"health_goal",
	"ai_advice",
	"share_text",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type healthProfileRepository struct{}

func NewHealthProfileRepository() domainRepo.HealthProfileRepository {
	return &healthProfileRepository{}
}

func (r *healthProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.HealthProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *healthProfileRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthProfile, error) {
	var profile entity.HealthProfile
	err := db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *healthProfileRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.HealthProfile, error) {
	var profiles []entity.HealthProfile
	err := db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Search returns profiles where any text column contains query, ignoring case.
// LOWER(...) LIKE is used instead of ILIKE so the query also runs on SQLite.
func (r *healthProfileRepository) Search(ctx context.Context, db *gorm.DB, query string) ([]entity.HealthProfile, error) {
	term := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	conditions := make([]string, len(searchableProfileColumns))
	args := make([]interface{}, len(searchableProfileColumns))
	for i, column := range searchableProfileColumns {
		conditions[i] = "LOWER(" + column + `) LIKE ? ESCAPE '\'`
		args[i] = term
	}

	var profiles []entity.HealthProfile
	err := db.WithContext(ctx).
		Where(strings.Join(conditions, " OR "), args...).
		Order("created_at ASC, id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
