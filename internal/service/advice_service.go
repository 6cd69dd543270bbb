package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dietary-advisor/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TextGenerator is the external text-generation collaborator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AdviceSource string

const (
	AdviceSourceAI       AdviceSource = "ai"
	AdviceSourceFallback AdviceSource = "fallback"
)

// AdviceResult is always populated: Advice is never empty and ProcessingTime is never negative.
type AdviceResult struct {
	Advice         string
	ProcessingTime float64
	Source         AdviceSource
}

type AdviceService interface {
	Synthesize(ctx context.Context, profile *entity.HealthProfile) *AdviceResult
}

type adviceService struct {
	generator TextGenerator
	log       *logrus.Logger
}

func NewAdviceService(generator TextGenerator, log *logrus.Logger) AdviceService {
	return &adviceService{
		generator: generator,
		log:       log,
	}
}

// Synthesize asks the generator for advice and substitutes rule-based advice on any failure.
// The outbound call is detached from ctx cancellation: a client that goes away does not abort it.
func (s *adviceService) Synthesize(ctx context.Context, profile *entity.HealthProfile) *AdviceResult {
	start := time.Now()
	summary := SummarizeProfile(profile)

	advice, err := s.generator.Generate(context.WithoutCancel(ctx), BuildAdvicePrompt(summary))
	source := AdviceSourceAI
	if err == nil && strings.TrimSpace(advice) == "" {
		err = fmt.Errorf("empty advice from text generator")
	}
	if err != nil {
		s.log.WithError(err).Warn("Text generation failed, using rule-based advice")
		advice = GenerateFallbackAdvice(summary)
		source = AdviceSourceFallback
	}

	return &AdviceResult{
		Advice:         advice,
		ProcessingTime: roundSeconds(time.Since(start)),
		Source:         source,
	}
}

// roundSeconds converts d to seconds rounded to one decimal place.
func roundSeconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return decimal.NewFromFloat(d.Seconds()).Round(1).InexactFloat64()
}

// SummarizeProfile renders the profile into the fixed paragraph sent to the generator.
// Health concerns and medications are only mentioned when present.
func SummarizeProfile(profile *entity.HealthProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %d-year-old %s with a body weight of %s.\n",
		profile.Name, profile.Age, profile.Gender, profile.BodyWeight)
	fmt.Fprintf(&b, "Current dietary habits: %s.\n", profile.DietaryHabit)
	fmt.Fprintf(&b, "Daily activities: %s.\n", profile.DailyActivities)
	fmt.Fprintf(&b, "Health goals: %s.\n", profile.HealthGoal)
	if profile.HealthProblem != "" {
		fmt.Fprintf(&b, "Health concerns: %s.\n", profile.HealthProblem)
	}
	if profile.Medication != "" {
		fmt.Fprintf(&b, "Current medications: %s.\n", profile.Medication)
	}
	b.WriteString("Please provide personalized dietary advice and meal recommendations to help achieve their health goals while considering their current lifestyle and any health conditions.")
	return b.String()
}

// BuildAdvicePrompt wraps a profile summary in the instructions given to the generator.
func BuildAdvicePrompt(summary string) string {
	return `You are a professional registered dietitian and nutritional advisor. Provide personalized, evidence-based dietary recommendations based on the client summary below. Always emphasize consulting healthcare professionals for medical concerns.

CLIENT SUMMARY:
` + summary + `

Please provide comprehensive dietary advice including:
1. Personalized meal recommendations
2. Nutritional guidelines specific to their profile
3. Foods to emphasize and avoid
4. Portion size recommendations
5. Any special considerations based on their health profile

PERSONALIZED DIETARY RECOMMENDATIONS:`
}

// BuildShareText renders the copyable text stored with a saved profile.
func BuildShareText(profile *entity.HealthProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dietary advice for %s (%d, %s)\n", profile.Name, profile.Age, profile.Gender)
	fmt.Fprintf(&b, "Goal: %s\n\n", profile.HealthGoal)
	b.WriteString(profile.AIAdvice)
	return b.String()
}
