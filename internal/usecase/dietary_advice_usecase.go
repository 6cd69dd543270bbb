package usecase

import (
	"context"

	"dietary-advisor/internal/converter"
	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/service"

	"github.com/sirupsen/logrus"
)

type DietaryAdviceUsecase interface {
	GenerateAdvice(ctx context.Context, req *dto.DietaryAdviceRequest) (*dto.DietaryAdviceResponse, error)
}

type dietaryAdviceUsecase struct {
	log           *logrus.Logger
	adviceService service.AdviceService
}

func NewDietaryAdviceUsecase(log *logrus.Logger, adviceService service.AdviceService) DietaryAdviceUsecase {
	return &dietaryAdviceUsecase{
		log:           log,
		adviceService: adviceService,
	}
}

// GenerateAdvice never fails on collaborator errors; the advice service substitutes rule-based advice.
func (u *dietaryAdviceUsecase) GenerateAdvice(ctx context.Context, req *dto.DietaryAdviceRequest) (*dto.DietaryAdviceResponse, error) {
	profile := converter.HealthProfileInputToEntity(&req.HealthProfileInput)

	result := u.adviceService.Synthesize(ctx, profile)
	u.log.WithFields(logrus.Fields{
		"source":          result.Source,
		"processing_time": result.ProcessingTime,
	}).Info("Dietary advice generated")

	return &dto.DietaryAdviceResponse{
		Advice:         result.Advice,
		ProcessingTime: result.ProcessingTime,
	}, nil
}
