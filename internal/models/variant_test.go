package models

import (
	"path/filepath"
	"testing"

	"MotivationGenerator/internal/ratelimit"

	"github.com/stretchr/testify/assert"
)

func TestNewVariants_GatesAndFolders(t *testing.T) {
	variants := NewVariants("data")

	single := variants[VariantSingle]
	assert.Equal(t, ratelimit.OpUploadSingle, single.UploadOp)
	assert.Equal(t, ratelimit.OpGenerateSingle, single.GenerateOp)
	assert.True(t, single.AcceptsEmotionalState)
	assert.Equal(t, filepath.Join("data", "inputs"), single.InputDir)

	daily := variants[VariantDaily]
	assert.Equal(t, ratelimit.OpUploadDaily, daily.UploadOp)
	assert.Equal(t, ratelimit.OpGenerateDaily, daily.GenerateOp)
	assert.False(t, daily.AcceptsEmotionalState)
	assert.Equal(t, filepath.Join("data", "daily_outputs"), daily.OutputDir)

	assert.ElementsMatch(t, []string{
		filepath.Join("data", "inputs"), filepath.Join("data", "outputs"),
		filepath.Join("data", "daily_inputs"), filepath.Join("data", "daily_outputs"),
	}, Folders(variants))
}
