package services

import (
	"context"
	"fmt"

	"github.com/Varun6712/smart-calories/models"

	"go.uber.org/zap"
)

const (
	ModeMock = "mock"
	ModeLive = "live"
)

// Estimator turns a meal description or photo into an estimate. The
// implementation is picked once at startup by NewEstimator.
type Estimator interface {
	Mode() string
	EstimateFromText(ctx context.Context, in TextEstimateInput) (*models.EstimationResult, error)
	EstimateFromImage(ctx context.Context, img *ImagePayload) (*models.ImageEstimation, error)
}

// NewEstimator returns the live estimator when a reasoner is available and
// the canned mock otherwise.
func NewEstimator(r Reasoner, profiles ProfileReader, logger *zap.Logger) Estimator {
	if r == nil {
		return MockEstimator{}
	}
	return &LiveEstimator{reasoner: r, profiles: profiles, logger: logger}
}

// MockEstimator answers with fixed results so the client works without a
// configured reasoning backend.
type MockEstimator struct{}

func (MockEstimator) Mode() string { return ModeMock }

func (MockEstimator) EstimateFromText(_ context.Context, in TextEstimateInput) (*models.EstimationResult, error) {
	if in.FoodName == "" {
		return nil, missing("food_name")
	}
	return MockTextEstimate(), nil
}

func (MockEstimator) EstimateFromImage(_ context.Context, img *ImagePayload) (*models.ImageEstimation, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, missing("image")
	}
	return MockImageEstimate(), nil
}

func MockTextEstimate() *models.EstimationResult {
	return &models.EstimationResult{
		Calories:   350,
		Macros:     models.Macros{Protein: "20g", Fat: "15g", Carbs: "35g"},
		Confidence: "medium",
		AIInsight:  "Based on common portions.",
	}
}

func MockImageEstimate() *models.ImageEstimation {
	return &models.ImageEstimation{Detected: []models.DetectedFood{
		{Name: "Rice (Raw)", Confidence: 0.95},
		{Name: "Dal (Plain)", Confidence: 0.88},
		{Name: "Roti", Confidence: 0.70},
	}}
}

// LiveEstimator builds a profile-aware request, calls the reasoner once and
// normalizes its answer. Failures are returned, never replaced by the mock.
type LiveEstimator struct {
	reasoner Reasoner
	profiles ProfileReader
	logger   *zap.Logger
}

func (e *LiveEstimator) Mode() string { return ModeLive }

func (e *LiveEstimator) EstimateFromText(ctx context.Context, in TextEstimateInput) (*models.EstimationResult, error) {
	if in.FoodName == "" {
		return nil, missing("food_name")
	}
	profile, err := e.profile()
	if err != nil {
		return nil, err
	}
	req, err := BuildTextRequest(in, profile)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, req)
}

func (e *LiveEstimator) EstimateFromImage(ctx context.Context, img *ImagePayload) (*models.ImageEstimation, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, missing("image")
	}
	profile, err := e.profile()
	if err != nil {
		return nil, err
	}
	req, err := BuildImageRequest(img, profile)
	if err != nil {
		return nil, err
	}
	res, err := e.run(ctx, req)
	if err != nil {
		return nil, err
	}
	return &models.ImageEstimation{EstimationResult: res}, nil
}

func (e *LiveEstimator) profile() (*models.UserProfile, error) {
	if e.profiles == nil {
		return nil, nil
	}
	p, err := e.profiles.Current()
	if err != nil {
		return nil, fmt.Errorf("load profile context: %w", err)
	}
	return p, nil
}

func (e *LiveEstimator) run(ctx context.Context, req *EstimationRequest) (*models.EstimationResult, error) {
	raw, err := e.reasoner.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	res, err := NormalizeEstimation(raw)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("unparseable estimation", zap.Int("raw_len", len(raw)), zap.Error(err))
		}
		return nil, err
	}
	return res, nil
}
