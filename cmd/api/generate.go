package main

import (
	"context"
	"errors"
	"fmt"

	"MotivationGenerator/internal/models"
	"MotivationGenerator/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd() *cobra.Command {
	var variantName, input, output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one sentence from a stored profile without the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			path, err := a.generateOnce(cmd.Context(), variantName, input, output)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&variantName, "variant", models.VariantSingle, "single or daily")
	cmd.Flags().StringVar(&input, "input", "", "input file (default: latest upload of the variant)")
	cmd.Flags().StringVar(&output, "output", "", "output file (default: next free output slot)")
	return cmd
}

// generateOnce runs the pipeline once and returns the output path.
func (a *app) generateOnce(ctx context.Context, variantName, input, output string) (string, error) {
	variant, ok := a.variants[variantName]
	if !ok {
		return "", fmt.Errorf("unknown variant %q", variantName)
	}

	var err error
	if input == "" {
		input, err = a.store.Latest(variant.InputDir, models.InputPrefix, models.FileExt)
		if errors.Is(err, storage.ErrEmpty) {
			return "", fmt.Errorf("no input in %s: %w", variant.InputDir, err)
		}
		if err != nil {
			return "", err
		}
	}
	if output == "" {
		output, err = a.store.Allocate(variant.OutputDir, models.OutputPrefix, models.FileExt)
		if err != nil {
			return "", err
		}
	}

	result, err := a.orchestrator.Run(ctx, input, output, variant)
	if err != nil {
		a.store.Release(output)
		return "", err
	}
	a.logger.Info("generateOnce(): done", zap.String("output", output), zap.String("sentence", result.MotivationalSentence))
	return output, nil
}
