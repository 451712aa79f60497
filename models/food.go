package models

// FoodCatalogEntry is seeded reference nutrition data.
// BaseCalories is per 100 g/ml or per single unit depending on Unit.
type FoodCatalogEntry struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"uniqueIndex;not null" json:"name"`
	BaseCalories   float64 `json:"base_calories"`
	Unit           string  `json:"unit"` // "g" | "ml" | "100ml" | "piece" | "bowl"
	DefaultServing float64 `json:"default_serving"`
	Carbs          float64 `json:"carbs"`
	Protein        float64 `json:"protein"`
	Fat            float64 `json:"fat"`
	Category       string  `json:"category"`
}

func (FoodCatalogEntry) TableName() string { return "foods" }
