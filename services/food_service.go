package services

import (
	"fmt"

	"github.com/Varun6712/smart-calories/models"

	"gorm.io/gorm"
)

const defaultFoodListLimit = 20

// SeedFoods is the reference set inserted on first startup.
var SeedFoods = []models.FoodCatalogEntry{
	{Name: "Rice (Raw)", BaseCalories: 360, Unit: "g", DefaultServing: 50, Carbs: 78, Protein: 6.8, Fat: 0.5, Category: "Staple"},
	{Name: "Roti (Wheat)", BaseCalories: 120, Unit: "piece", DefaultServing: 1, Carbs: 20, Protein: 4, Fat: 2, Category: "Staple"},
	{Name: "Dal (Toor, Plain)", BaseCalories: 100, Unit: "bowl", DefaultServing: 1, Carbs: 15, Protein: 6, Fat: 1, Category: "Main"},
	{Name: "Paneer Butter Masala", BaseCalories: 350, Unit: "bowl", DefaultServing: 1, Carbs: 12, Protein: 10, Fat: 25, Category: "Main"},
	{Name: "Chicken Curry", BaseCalories: 300, Unit: "bowl", DefaultServing: 1, Carbs: 8, Protein: 25, Fat: 18, Category: "Main"},
	{Name: "Dosa (Plain)", BaseCalories: 133, Unit: "piece", DefaultServing: 1, Carbs: 23, Protein: 4, Fat: 3, Category: "Staple"},
	{Name: "Idli", BaseCalories: 58, Unit: "piece", DefaultServing: 2, Carbs: 12, Protein: 2, Fat: 0.2, Category: "Staple"},
	{Name: "Banana", BaseCalories: 89, Unit: "piece", DefaultServing: 1, Carbs: 22, Protein: 1, Fat: 0.3, Category: "Fruit"},
	{Name: "Milk (Cow)", BaseCalories: 60, Unit: "100ml", DefaultServing: 200, Carbs: 4.8, Protein: 3.2, Fat: 3.5, Category: "Dairy"},
}

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// Search lists up to 20 entries when query is empty, otherwise every entry
// whose name contains query. Case sensitivity follows the column collation.
func (s *FoodService) Search(query string) ([]models.FoodCatalogEntry, error) {
	foods := make([]models.FoodCatalogEntry, 0)
	q := s.db.Order("id")
	if query == "" {
		q = q.Limit(defaultFoodListLimit)
	} else {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}
	if err := q.Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	return foods, nil
}

// Seed inserts SeedFoods in one transaction when the catalog is empty.
// It returns how many rows were inserted; zero means the catalog was already seeded.
func (s *FoodService) Seed() (int, error) {
	var inserted int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.FoodCatalogEntry{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		rows := make([]models.FoodCatalogEntry, len(SeedFoods))
		copy(rows, SeedFoods)
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed foods: %w", err)
	}
	return inserted, nil
}
