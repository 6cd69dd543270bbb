package entity

import (
	"time"
)

// HealthProfile is a saved questionnaire response together with the advice generated for it.
// Records are created once and never updated.
type HealthProfile struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Age             int       `gorm:"not null" json:"age"`
	Gender          string    `gorm:"type:varchar(10);not null" json:"gender"`
	BodyWeight      string    `gorm:"type:varchar(50);not null" json:"body_weight"`
	DietaryHabit    string    `gorm:"type:varchar(200);not null" json:"dietary_habit"`
	HealthProblem   string    `gorm:"type:text;not null" json:"health_problem"`
	Medication      string    `gorm:"type:text;not null" json:"medication"`
	DailyActivities string    `gorm:"type:text;not null" json:"daily_activities"`
	HealthGoal      string    `gorm:"type:text;not null" json:"health_goal"`
	AIAdvice        string    `gorm:"column:ai_advice;type:text;not null" json:"ai_advice"`
	ShareText       string    `gorm:"type:text;not null" json:"share_text"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (HealthProfile) TableName() string {
	return "health_profiles"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
