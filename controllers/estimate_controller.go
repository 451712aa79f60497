package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Varun6712/smart-calories/metrics"
	"github.com/Varun6712/smart-calories/services"
	"github.com/Varun6712/smart-calories/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageBytes bounds the uploaded photo read into memory.
const maxImageBytes = 10 << 20

var errImageTooLarge = errors.New("image exceeds 10 MB limit")

type EstimateController struct {
	Estimator services.Estimator
	Archive   utils.PhotoArchive
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

func NewEstimateController(e services.Estimator, a utils.PhotoArchive, m *metrics.Metrics, logger *zap.Logger) *EstimateController {
	if a == nil {
		a = utils.NoopArchive{}
	}
	return &EstimateController{Estimator: e, Archive: a, Metrics: m, Logger: logger}
}

// POST /api/estimate-image (multipart, field "image")
func (ec *EstimateController) EstimateImage(c *gin.Context) {
	img, err := readImage(c)
	if err != nil {
		ec.observe("image", services.ErrValidation)
		if errors.Is(err, errImageTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	ec.archive(c.Request.Context(), img)

	out, err := ec.Estimator.EstimateFromImage(c.Request.Context(), img)
	ec.observe("image", err)
	if err != nil {
		respondError(c, ec.Logger, err, "failed to estimate image")
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/estimate-text
func (ec *EstimateController) EstimateText(c *gin.Context) {
	var input services.TextEstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	out, err := ec.Estimator.EstimateFromText(c.Request.Context(), input)
	ec.observe("text", err)
	if err != nil {
		respondError(c, ec.Logger, err, "failed to estimate text")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ec *EstimateController) observe(path string, err error) {
	if ec.Metrics != nil {
		ec.Metrics.ObserveEstimation(ec.Estimator.Mode(), path, estimationOutcome(err))
	}
}

// archive stores the photo when an archive is configured; failures are only logged.
func (ec *EstimateController) archive(ctx context.Context, img *services.ImagePayload) {
	key, err := ec.Archive.Store(ctx, img.Data, img.MIMEType)
	if err != nil {
		ec.Logger.Warn("meal photo archive failed", zap.Error(err))
		return
	}
	if key != "" {
		ec.Logger.Debug("meal photo archived", zap.String("key", key))
	}
}

func readImage(c *gin.Context) (*services.ImagePayload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// one byte past the limit tells an oversized upload from an exact fit
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, errImageTooLarge
	}
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}
	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	return &services.ImagePayload{Data: data, MIMEType: mimeType}, nil
}
