package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Reasoner sends one estimation request to the external reasoning service
// and returns its raw text answer.
type Reasoner interface {
	Generate(ctx context.Context, req *EstimationRequest) (string, error)
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiReasoner calls the Gemini API through the genai client.
type GeminiReasoner struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

func NewGeminiReasoner(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiReasoner, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiReasoner{models: client.Models, model: model, timeout: timeout}, nil
}

// Generate makes exactly one GenerateContent call. The caller's cancellation
// is not propagated; only the configured timeout bounds the call.
func (g *GeminiReasoner) Generate(ctx context.Context, req *EstimationRequest) (string, error) {
	ctx = context.WithoutCancel(ctx)
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil {
		return "", errors.New("gemini generate: empty response")
	}
	return resp.Text(), nil
}
