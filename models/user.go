package models

import "time"

// UserProfile is the single biometric profile of the person using the app.
// CaloricGoal is derived from the other fields and rewritten on every save.
type UserProfile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	Height        float64   `json:"height"` // cm
	Weight        float64   `json:"weight"` // kg
	ActivityLevel string    `json:"activity_level"`
	GoalType      string    `json:"goal_type"` // "maintain" | "loss" | "gain"
	CaloricGoal   int       `json:"caloric_goal"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string { return "users" }
