package models

import "time"

// LogEntry is one consumption event. FoodName is free text and does not have
// to match a catalog entry.
type LogEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index" json:"user_id"`
	FoodName      string    `json:"food_name"`
	Calories      float64   `json:"calories"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"`
	CookingMethod string    `json:"cooking_method"`
	MealType      string    `gorm:"size:20" json:"meal_type"` // "breakfast" | "lunch" | "dinner" | "snack"
	Timestamp     time.Time `gorm:"index;not null" json:"timestamp"` // UTC
}

func (LogEntry) TableName() string { return "logs" }
