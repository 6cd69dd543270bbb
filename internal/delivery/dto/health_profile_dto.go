package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Age accepts either a JSON number or a string and keeps its text for validation.
// Integral numbers are normalized ("34.0" becomes "34"); anything else is kept verbatim
// so the "age" validation rule can reject it with a field-level error.
type Age string

func (a *Age) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(raw, []byte("null")):
		*a = ""
	case len(raw) > 0 && raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*a = Age(strings.TrimSpace(s))
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
			*a = Age(strconv.FormatInt(int64(f), 10))
		} else {
			*a = Age(raw)
		}
	}
	return nil
}

// Int returns the parsed age, or 0 when the value is not an integer.
func (a Age) Int() int {
	n, err := strconv.Atoi(string(a))
	if err != nil {
		return 0
	}
	return n
}

// Request DTOs

// HealthProfileInput is the questionnaire shared by the advice and save requests.
type HealthProfileInput struct {
	Name            string `json:"name" validate:"required,max=100"`
	Age             Age    `json:"age" validate:"required,age"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	BodyWeight      string `json:"bodyWeight" validate:"required,max=50"`
	DietaryHabit    string `json:"dietaryHabit" validate:"required,max=200"`
	HealthProblem   string `json:"healthProblem" validate:"max=500"`
	Medication      string `json:"medication" validate:"max=200"`
	DailyActivities string `json:"dailyActivities" validate:"required,max=200"`
	HealthGoal      string `json:"healthGoal" validate:"required,max=500"`
}

// Normalize trims surrounding whitespace so blank answers count as missing.
func (in *HealthProfileInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Gender = strings.TrimSpace(in.Gender)
	in.BodyWeight = strings.TrimSpace(in.BodyWeight)
	in.DietaryHabit = strings.TrimSpace(in.DietaryHabit)
	in.HealthProblem = strings.TrimSpace(in.HealthProblem)
	in.Medication = strings.TrimSpace(in.Medication)
	in.DailyActivities = strings.TrimSpace(in.DailyActivities)
	in.HealthGoal = strings.TrimSpace(in.HealthGoal)
}

type DietaryAdviceRequest struct {
	HealthProfileInput
}

type SaveHealthProfileRequest struct {
	HealthProfileInput
	AIAdvice  string `json:"aiAdvice" validate:"required,max=20000"`
	ShareText string `json:"shareText" validate:"max=25000"`
}

func (r *SaveHealthProfileRequest) Normalize() {
	r.HealthProfileInput.Normalize()
	r.AIAdvice = strings.TrimSpace(r.AIAdvice)
	r.ShareText = strings.TrimSpace(r.ShareText)
}

// Response DTOs

type DietaryAdviceResponse struct {
	Advice         string  `json:"advice"`
	ProcessingTime float64 `json:"processingTime"`
}

type HealthProfileResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Gender          string    `json:"gender"`
	BodyWeight      string    `json:"bodyWeight"`
	DietaryHabit    string    `json:"dietaryHabit"`
	HealthProblem   string    `json:"healthProblem"`
	Medication      string    `json:"medication"`
	DailyActivities string    `json:"dailyActivities"`
	HealthGoal      string    `json:"healthGoal"`
	AIAdvice        string    `json:"aiAdvice"`
	ShareText       string    `json:"shareText"`
	CreatedAt       time.Time `json:"createdAt"`
}
