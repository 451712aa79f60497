package controllers

import (
	"net/http"

	"github.com/Varun6712/smart-calories/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FoodController struct {
	Foods  *services.FoodService
	Logger *zap.Logger
}

func NewFoodController(f *services.FoodService, logger *zap.Logger) *FoodController {
	return &FoodController{Foods: f, Logger: logger}
}

// GET /api/foods?query=rice (q is accepted as well)
func (fc *FoodController) SearchFoods(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		query = c.Query("q")
	}
	foods, err := fc.Foods.Search(query)
	if err != nil {
		respondError(c, fc.Logger, err, "failed to search foods")
		return
	}
	c.JSON(http.StatusOK, foods)
}
