package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, bmi, 0.001)
	assert.Equal(t, "Normal weight", BMICategory(bmi))

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17))
	assert.Equal(t, "Overweight", BMICategory(27))
	assert.Equal(t, "Obesity class I", BMICategory(30))
	assert.Equal(t, "Obesity class III", BMICategory(45))
}
