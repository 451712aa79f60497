package utils

import (
	"math"
	"strings"
)

// ActivityMultipliers maps activity levels to their TDEE factor.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const (
	defaultActivityMultiplier = 1.2
	goalOffsetKcal            = 500
)

type GoalInputs struct {
	Age           int
	Gender        string
	Height        float64 // cm
	Weight        float64 // kg
	ActivityLevel string
	GoalType      string
}

type GoalBreakdown struct {
	BMR         float64 `json:"bmr"`
	TDEE        int     `json:"tdee"`
	CaloricGoal int     `json:"caloric_goal"`
}

// CalculateBMR uses Mifflin-St Jeor. Only "male" selects the +5 branch;
// every other gender value uses -161.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.ToLower(gender) == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE scales bmr by the activity multiplier, falling back to
// sedentary for unknown levels.
func CalculateTDEE(bmr float64, activityLevel string) int {
	m, ok := ActivityMultipliers[activityLevel]
	if !ok {
		m = defaultActivityMultiplier
	}
	return int(roundHalfUp(bmr * m))
}

// roundHalfUp rounds .5 toward +Inf, so -2.5 becomes -2 rather than -3.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// AdjustForGoal applies the fixed loss/gain offset.
func AdjustForGoal(tdee int, goalType string) int {
	switch goalType {
	case "loss":
		return tdee - goalOffsetKcal
	case "gain":
		return tdee + goalOffsetKcal
	default:
		return tdee
	}
}

func ComputeGoal(in GoalInputs) GoalBreakdown {
	bmr := CalculateBMR(in.Weight, in.Height, in.Age, in.Gender)
	tdee := CalculateTDEE(bmr, in.ActivityLevel)
	return GoalBreakdown{
		BMR:         bmr,
		TDEE:        tdee,
		CaloricGoal: AdjustForGoal(tdee, in.GoalType),
	}
}
