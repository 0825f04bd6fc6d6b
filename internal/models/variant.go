package models

import (
	"path/filepath"

	"MotivationGenerator/internal/ratelimit"
)

const (
	VariantSingle = "single"
	VariantDaily  = "daily"

	InputPrefix  = "input"
	OutputPrefix = "output"
	FileExt      = ".json"
)

// Variant bundles everything that differs between the single and daily flows.
type Variant struct {
	Name                  string
	TemplateKey           string
	AcceptsEmotionalState bool
	InputDir              string
	OutputDir             string
	UploadOp              string
	GenerateOp            string
}

// NewVariants lays out the four flat-file folders under dataDir.
func NewVariants(dataDir string) map[string]Variant {
	return map[string]Variant{
		VariantSingle: {
			Name:                  VariantSingle,
			TemplateKey:           VariantSingle,
			AcceptsEmotionalState: true,
			InputDir:              filepath.Join(dataDir, "inputs"),
			OutputDir:             filepath.Join(dataDir, "outputs"),
			UploadOp:              ratelimit.OpUploadSingle,
			GenerateOp:            ratelimit.OpGenerateSingle,
		},
		VariantDaily: {
			Name:        VariantDaily,
			TemplateKey: VariantDaily,
			InputDir:    filepath.Join(dataDir, "daily_inputs"),
			OutputDir:   filepath.Join(dataDir, "daily_outputs"),
			UploadOp:    ratelimit.OpUploadDaily,
			GenerateOp:  ratelimit.OpGenerateDaily,
		},
	}
}

// Folders returns every directory a variant set writes to.
func Folders(variants map[string]Variant) []string {
	var dirs []string
	for _, v := range variants {
		dirs = append(dirs, v.InputDir, v.OutputDir)
	}
	return dirs
}
