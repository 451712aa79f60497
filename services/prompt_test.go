package services

import (
	"strings"
	"testing"

	"github.com/Varun6712/smart-calories/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSystemInstruction_WithoutProfile(t *testing.T) {
	s := BuildSystemInstruction(nil)
	assert.Contains(t, s, "You are SmartCalories AI")
	assert.NotContains(t, s, "User Profile:")
	assert.Contains(t, s, "Avoid extreme or unrealistic values.")
	assert.Contains(t, s, "If quantity is vague, infer a reasonable portion size.")
	assert.Contains(t, s, "cross-check food type and portion visually")
	assert.Contains(t, s, `"ai_insight": "One short helpful suggestion"`)
}

func TestBuildSystemInstruction_WithProfile(t *testing.T) {
	s := BuildSystemInstruction(&models.UserProfile{Weight: 72.5, GoalType: "loss", ActivityLevel: "light"})
	assert.Contains(t, s, "assistant.\nUser Profile:\n- Weight: 72.5kg\n- Goal: loss\n- Activity: light\n")
}

func TestBuildTextRequest_Defaults(t *testing.T) {
	req, err := BuildTextRequest(TextEstimateInput{FoodName: "Poha"}, nil)
	require.NoError(t, err)
	assert.Nil(t, req.Image)
	assert.Equal(t, "Analyze this meal entry:\nFood: Poha\nQuantity: 1 serving\nCooking Method: standard\n\nReturn ONLY the JSON object.", req.Prompt)
	assert.NotContains(t, req.Prompt, "Oil used")
}

func TestBuildTextRequest_AllFields(t *testing.T) {
	req, err := BuildTextRequest(TextEstimateInput{
		FoodName:      "Aloo Paratha",
		Quantity:      "2 pieces",
		CookingMethod: "pan fried",
		OilType:       "ghee",
	}, &models.UserProfile{Weight: 60, GoalType: "gain", ActivityLevel: "active"})
	require.NoError(t, err)
	assert.Contains(t, req.Prompt, "Quantity: 2 pieces\n")
	assert.Contains(t, req.Prompt, "Cooking Method: pan fried\n")
	assert.Contains(t, req.Prompt, "Oil used: ghee\n")
	assert.True(t, strings.HasSuffix(req.Prompt, "Return ONLY the JSON object."))
	assert.Contains(t, req.SystemInstruction, "- Weight: 60kg")
}

func TestBuildTextRequest_MissingFoodName(t *testing.T) {
	_, err := BuildTextRequest(TextEstimateInput{Quantity: "1 bowl"}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildImageRequest(t *testing.T) {
	img := &ImagePayload{Data: []byte{0xff, 0xd8}, MIMEType: "image/jpeg"}
	req, err := BuildImageRequest(img, nil)
	require.NoError(t, err)
	assert.Equal(t, imagePrompt, req.Prompt)
	assert.Same(t, img, req.Image)

	_, err = BuildImageRequest(nil, nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = BuildImageRequest(&ImagePayload{MIMEType: "image/png"}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}
