package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"dietary-advisor/internal/converter"
	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/domain/entity"
	"dietary-advisor/internal/domain/repository"
	"dietary-advisor/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("health profile not found")
)

type HealthProfileUsecase interface {
	SaveProfile(ctx context.Context, req *dto.SaveHealthProfileRequest) (*dto.HealthProfileResponse, error)
	ListProfiles(ctx context.Context) ([]dto.HealthProfileResponse, error)
	SearchProfiles(ctx context.Context, query string) ([]dto.HealthProfileResponse, error)
	GetProfile(ctx context.Context, id int64) (*dto.HealthProfileResponse, error)
}

type healthProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.HealthProfileRepository
	profileCache repository.HealthProfileCache
	auditService service.AuditService
}

// NewHealthProfileUsecase wires the profile usecase. profileCache may be nil.
func NewHealthProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.HealthProfileRepository,
	profileCache repository.HealthProfileCache,
	auditService service.AuditService,
) HealthProfileUsecase {
	return &healthProfileUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		profileCache: profileCache,
		auditService: auditService,
	}
}

func (u *healthProfileUsecase) SaveProfile(ctx context.Context, req *dto.SaveHealthProfileRequest) (*dto.HealthProfileResponse, error) {
	profile := converter.HealthProfileInputToEntity(&req.HealthProfileInput)
	profile.AIAdvice = req.AIAdvice
	profile.ShareText = req.ShareText
	if profile.ShareText == "" {
		profile.ShareText = service.BuildShareText(profile)
	}

	if err := u.profileRepo.Create(ctx, u.db, profile); err != nil {
		u.log.Warnf("Failed to create health profile: %+v", err)
		return nil, err
	}

	res := converter.HealthProfileToResponse(profile)

	// Audit log
	if err := u.auditService.LogCreate(ctx, u.db, entity.AuditActionHealthProfileCreate, "health_profile", strconv.FormatInt(profile.ID, 10), res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.cacheProfile(ctx, profile)

	return res, nil
}

func (u *healthProfileUsecase) ListProfiles(ctx context.Context) ([]dto.HealthProfileResponse, error) {
	profiles, err := u.profileRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all health profiles: %+v", err)
		return nil, err
	}

	return converter.HealthProfilesToResponses(profiles), nil
}

// SearchProfiles matches query against the free-text fields; a blank query lists every profile.
func (u *healthProfileUsecase) SearchProfiles(ctx context.Context, query string) ([]dto.HealthProfileResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return u.ListProfiles(ctx)
	}

	profiles, err := u.profileRepo.Search(ctx, u.db, query)
	if err != nil {
		u.log.Warnf("Failed to search health profiles: %+v", err)
		return nil, err
	}

	return converter.HealthProfilesToResponses(profiles), nil
}

func (u *healthProfileUsecase) GetProfile(ctx context.Context, id int64) (*dto.HealthProfileResponse, error) {
	if u.profileCache != nil {
		cached, err := u.profileCache.Get(ctx, id)
		if err != nil {
			u.log.WithError(err).Warn("Profile cache read failed")
		} else if cached != nil {
			return converter.HealthProfileToResponse(cached), nil
		}
	}

	profile, err := u.profileRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find health profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	u.cacheProfile(ctx, profile)

	return converter.HealthProfileToResponse(profile), nil
}

func (u *healthProfileUsecase) cacheProfile(ctx context.Context, profile *entity.HealthProfile) {
	if u.profileCache == nil {
		return
	}
	if err := u.profileCache.Set(ctx, profile); err != nil {
		u.log.WithError(err).Warn("Profile cache write failed")
	}
}
