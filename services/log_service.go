package services

import (
	"fmt"
	"time"

	"github.com/Varun6712/smart-calories/models"

	"gorm.io/gorm"
)

// DayLayout is the calendar-day format accepted by List.
const DayLayout = "2006-01-02"

type LogInput struct {
	UserID        uint    `json:"user_id"`
	FoodName      string  `json:"food_name"`
	Calories      float64 `json:"calories"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	CookingMethod string  `json:"cooking_method"`
	MealType      string  `json:"meal_type"`
}

// LogListing is a list of entries together with the sum of their calories.
type LogListing struct {
	Entries       []models.LogEntry `json:"logs"`
	TotalCalories float64           `json:"totalCalories"`
}

type LogService struct {
	db  *gorm.DB
	pub LogPublisher
	now func() time.Time
}

// NewLogService wires the store; pub may be nil.
func NewLogService(db *gorm.DB, pub LogPublisher) *LogService {
	return &LogService{db: db, pub: pub, now: time.Now}
}

// Append stores the entry verbatim with the current UTC time.
func (s *LogService) Append(in LogInput) (*models.LogEntry, error) {
	entry := &models.LogEntry{
		UserID:        in.UserID,
		FoodName:      in.FoodName,
		Calories:      in.Calories,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		CookingMethod: in.CookingMethod,
		MealType:      in.MealType,
		Timestamp:     s.now().UTC(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("insert log: %w", err)
	}
	if s.pub != nil {
		s.pub.PublishLog(*entry)
	}
	return entry, nil
}

// List returns entries newest first. A non-empty day restricts the result
// to that UTC calendar day. The total is always summed from the returned slice.
func (s *LogService) List(day string) (*LogListing, error) {
	q := s.db.Order("timestamp DESC").Order("id DESC")
	if day != "" {
		start, err := time.ParseInLocation(DayLayout, day, time.UTC)
		if err != nil {
			return nil, invalid("date", fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", day))
		}
		end := start.AddDate(0, 0, 1)
		q = q.Where("timestamp >= ? AND timestamp < ?", start, end)
	}

	entries := make([]models.LogEntry, 0)
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return &LogListing{Entries: entries, TotalCalories: SumCalories(entries)}, nil
}

func SumCalories(entries []models.LogEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Calories
	}
	return total
}
