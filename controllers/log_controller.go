package controllers

import (
	"net/http"

	"github.com/Varun6712/smart-calories/metrics"
	"github.com/Varun6712/smart-calories/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LogController struct {
	Logs    *services.LogService
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

func NewLogController(l *services.LogService, m *metrics.Metrics, logger *zap.Logger) *LogController {
	return &LogController{Logs: l, Metrics: m, Logger: logger}
}

// POST /api/logs
func (lc *LogController) CreateLog(c *gin.Context) {
	var input services.LogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	entry, err := lc.Logs.Append(input)
	if err != nil {
		respondError(c, lc.Logger, err, "failed to save log")
		return
	}
	if lc.Metrics != nil {
		lc.Metrics.LogsAppended.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": entry.ID})
}

// GET /api/logs?date=YYYY-MM-DD
func (lc *LogController) ListLogs(c *gin.Context) {
	listing, err := lc.Logs.List(c.Query("date"))
	if err != nil {
		respondError(c, lc.Logger, err, "failed to load logs")
		return
	}
	c.JSON(http.StatusOK, listing)
}
