package controllers

import (
	"net/http"

	"github.com/Varun6712/smart-calories/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileController struct {
	Profiles *services.ProfileService
	Logger   *zap.Logger
}

func NewProfileController(p *services.ProfileService, logger *zap.Logger) *ProfileController {
	return &ProfileController{Profiles: p, Logger: logger}
}

// GET /api/profile -> profile or null
func (pc *ProfileController) GetProfile(c *gin.Context) {
	p, err := pc.Profiles.Current()
	if err != nil {
		respondError(c, pc.Logger, err, "failed to load profile")
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/profile
func (pc *ProfileController) SaveProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	p, err := pc.Profiles.Save(input)
	if err != nil {
		respondError(c, pc.Logger, err, "failed to save profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "caloric_goal": p.CaloricGoal})
}

// GET /api/profile/summary
func (pc *ProfileController) GetSummary(c *gin.Context) {
	sum, err := pc.Profiles.Summary()
	if err != nil {
		respondError(c, pc.Logger, err, "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, sum)
}
