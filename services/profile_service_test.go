package services

import (
	"errors"
	"testing"

	"github.com/Varun6712/smart-calories/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() ProfileInput {
	return ProfileInput{
		Name:          "Asha",
		Age:           25,
		Gender:        "male",
		Height:        175,
		Weight:        70,
		ActivityLevel: "moderate",
		GoalType:      "loss",
	}
}

func TestProfileService_CurrentEmpty(t *testing.T) {
	svc := NewProfileService(newTestDB(t))
	p, err := svc.Current()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProfileService_SaveComputesGoal(t *testing.T) {
	svc := NewProfileService(newTestDB(t))

	p, err := svc.Save(validProfile())
	require.NoError(t, err)
	assert.Equal(t, 2094, p.CaloricGoal)

	stored, err := svc.Current()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Asha", stored.Name)
	assert.Equal(t, 2094, stored.CaloricGoal)
}

func TestProfileService_SaveIsUpsert(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)

	first, err := svc.Save(validProfile())
	require.NoError(t, err)
	second, err := svc.Save(validProfile())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	in := validProfile()
	in.GoalType = "gain"
	in.Gender = "female"
	third, err := svc.Save(in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	// 1507.75 * 1.55 = 2337.0125 -> 2337, +500
	assert.Equal(t, 2837, third.CaloricGoal)

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileService_SaveRejectsMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)

	_, err := svc.Save(ProfileInput{Name: "Asha", Age: 0, Height: 175})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"age", "weight"}, verr.Fields)

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProfileService_NoRangeValidation(t *testing.T) {
	svc := NewProfileService(newTestDB(t))
	in := validProfile()
	in.Age = -5
	in.Weight = -1
	_, err := svc.Save(in)
	assert.NoError(t, err)
}

func TestProfileService_Summary(t *testing.T) {
	svc := NewProfileService(newTestDB(t))

	_, err := svc.Summary()
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.Save(validProfile())
	require.NoError(t, err)

	sum, err := svc.Summary()
	require.NoError(t, err)
	assert.InDelta(t, 1673.75, sum.BMR, 1e-9)
	assert.Equal(t, 2594, sum.TDEE)
	assert.Equal(t, 2094, sum.CaloricGoal)
	assert.InDelta(t, 22.86, sum.BMI, 0.01)
	assert.Equal(t, "Normal weight", sum.BMICategory)
}
