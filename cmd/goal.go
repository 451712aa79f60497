package main

import (
	"fmt"

	"github.com/Varun6712/smart-calories/utils"

	"github.com/spf13/cobra"
)

var goalIn utils.GoalInputs

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Print BMR, TDEE and daily caloric goal for the given body metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if goalIn.Age <= 0 || goalIn.Height <= 0 || goalIn.Weight <= 0 {
			return fmt.Errorf("--age, --height and --weight must be positive")
		}
		b := utils.ComputeGoal(goalIn)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "BMR:          %.2f kcal\n", b.BMR)
		fmt.Fprintf(out, "TDEE:         %d kcal\n", b.TDEE)
		fmt.Fprintf(out, "Caloric goal: %d kcal\n", b.CaloricGoal)
		return nil
	},
}

func init() {
	f := goalCmd.Flags()
	f.IntVar(&goalIn.Age, "age", 0, "Age in years")
	f.StringVar(&goalIn.Gender, "gender", "male", "Gender (male selects the +5 BMR branch)")
	f.Float64Var(&goalIn.Height, "height", 0, "Height in cm")
	f.Float64Var(&goalIn.Weight, "weight", 0, "Weight in kg")
	f.StringVar(&goalIn.ActivityLevel, "activity", "sedentary", "sedentary, light, moderate, active or very_active")
	f.StringVar(&goalIn.GoalType, "goal", "maintain", "maintain, loss or gain")
}
