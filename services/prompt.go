package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Varun6712/smart-calories/models"
)

const (
	defaultQuantity      = "1 serving"
	defaultCookingMethod = "standard"

	imagePrompt = "Analyze this food image. Return ONLY the JSON object as specified in the system instructions."
)

const systemInstructionTemplate = `
You are SmartCalories AI, an expert nutrition analysis assistant.%s

Goal:
Estimate food calories accurately without manual calorie entry using AI reasoning.

Instructions:
1. Estimate calories realistically based on food type, quantity, cooking method, and oil usage.
2. Adjust estimation slightly based on user profile and goal (if provided).
3. If quantity is vague, infer a reasonable portion size.
4. If image is provided, cross-check food type and portion visually.
5. Avoid extreme or unrealistic values.
6. Be concise and factual.

Output:
Return ONLY valid JSON in the following format:
{
  "calories": number,
  "macros": {
    "protein": "X g",
    "fat": "X g",
    "carbs": "X g"
  },
  "confidence": "low | medium | high",
  "ai_insight": "One short helpful suggestion"
}
`

// TextEstimateInput describes a meal in words. Only FoodName is required.
type TextEstimateInput struct {
	FoodName      string `json:"food_name"`
	Quantity      string `json:"quantity"`
	CookingMethod string `json:"cooking_method"`
	OilType       string `json:"oil_type"`
}

type ImagePayload struct {
	Data     []byte
	MIMEType string
}

// EstimationRequest is everything sent to the reasoning service for one call.
type EstimationRequest struct {
	SystemInstruction string
	Prompt            string
	Image             *ImagePayload
}

// BuildSystemInstruction renders the fixed instruction, embedding a short
// profile block when p is non-nil.
func BuildSystemInstruction(p *models.UserProfile) string {
	return fmt.Sprintf(systemInstructionTemplate, profileContext(p))
}

func profileContext(p *models.UserProfile) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("\nUser Profile:\n- Weight: %skg\n- Goal: %s\n- Activity: %s\n",
		strconv.FormatFloat(p.Weight, 'f', -1, 64), p.GoalType, p.ActivityLevel)
}

func BuildTextRequest(in TextEstimateInput, p *models.UserProfile) (*EstimationRequest, error) {
	if in.FoodName == "" {
		return nil, missing("food_name")
	}
	return &EstimationRequest{
		SystemInstruction: BuildSystemInstruction(p),
		Prompt:            textPrompt(in),
	}, nil
}

func textPrompt(in TextEstimateInput) string {
	quantity := in.Quantity
	if quantity == "" {
		quantity = defaultQuantity
	}
	method := in.CookingMethod
	if method == "" {
		method = defaultCookingMethod
	}

	var b strings.Builder
	b.WriteString("Analyze this meal entry:\n")
	fmt.Fprintf(&b, "Food: %s\n", in.FoodName)
	fmt.Fprintf(&b, "Quantity: %s\n", quantity)
	fmt.Fprintf(&b, "Cooking Method: %s\n", method)
	if in.OilType != "" {
		fmt.Fprintf(&b, "Oil used: %s\n", in.OilType)
	}
	b.WriteString("\nReturn ONLY the JSON object.")
	return b.String()
}

func BuildImageRequest(img *ImagePayload, p *models.UserProfile) (*EstimationRequest, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, missing("image")
	}
	return &EstimationRequest{
		SystemInstruction: BuildSystemInstruction(p),
		Prompt:            imagePrompt,
		Image:             img,
	}, nil
}
