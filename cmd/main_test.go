package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "serve")
	assert.Contains(t, buf.String(), "goal")
}

func TestGoalCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"goal", "--age", "25", "--gender", "male", "--height", "175", "--weight", "70", "--activity", "moderate", "--goal", "loss"})

	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "BMR:          1673.75 kcal")
	assert.Contains(t, out, "TDEE:         2594 kcal")
	assert.Contains(t, out, "Caloric goal: 2094 kcal")
}

func TestGoalCommandRejectsMissingMetrics(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"goal", "--age", "0", "--height", "175", "--weight", "70"})

	assert.Error(t, rootCmd.Execute())
}
