package converter

import (
	"dietary-advisor/internal/delivery/dto"
	"dietary-advisor/internal/domain/entity"
)

// HealthProfileInputToEntity converts a validated questionnaire into an unsaved HealthProfile
func HealthProfileInputToEntity(in *dto.HealthProfileInput) *entity.HealthProfile {
	if in == nil {
		return nil
	}

	return &entity.HealthProfile{
		Name:            in.Name,
		Age:             in.Age.Int(),
		Gender:          in.Gender,
		BodyWeight:      in.BodyWeight,
		DietaryHabit:    in.DietaryHabit,
		HealthProblem:   in.HealthProblem,
		Medication:      in.Medication,
		DailyActivities: in.DailyActivities,
		HealthGoal:      in.HealthGoal,
	}
}

// HealthProfileToResponse converts a HealthProfile entity to HealthProfileResponse DTO
func HealthProfileToResponse(profile *entity.HealthProfile) *dto.HealthProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.HealthProfileResponse{
		ID:              profile.ID,
		Name:            profile.Name,
		Age:             profile.Age,
		Gender:          profile.Gender,
		BodyWeight:      profile.BodyWeight,
		DietaryHabit:    profile.DietaryHabit,
		HealthProblem:   profile.HealthProblem,
		Medication:      profile.Medication,
		DailyActivities: profile.DailyActivities,
		HealthGoal:      profile.HealthGoal,
		AIAdvice:        profile.AIAdvice,
		ShareText:       profile.ShareText,
		CreatedAt:       profile.CreatedAt.UTC(),
	}
}

// HealthProfilesToResponses converts a slice of HealthProfile entities; never returns nil
func HealthProfilesToResponses(profiles []entity.HealthProfile) []dto.HealthProfileResponse {
	responses := make([]dto.HealthProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *HealthProfileToResponse(&profiles[i])
	}
	return responses
}
