package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Mode string
}

// GET /health
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "estimation_mode": hc.Mode})
}
