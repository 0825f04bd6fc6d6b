package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"MotivationGenerator/internal/llm"
	"MotivationGenerator/internal/models"
	"MotivationGenerator/internal/prompt"
	"MotivationGenerator/internal/validation"

	"go.uber.org/zap"
)

// BlobStore is the part of the indexed store the pipeline needs.
type BlobStore interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
}

type Orchestrator struct {
	store     BlobStore
	validator *validation.Validator
	generator llm.Generator
	logger    *zap.Logger
}

func NewOrchestrator(store BlobStore, validator *validation.Validator, generator llm.Generator, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		store:     store,
		validator: validator,
		generator: generator,
		logger:    logger,
	}
}

// Run loads inputPath, generates one sentence for the variant and writes it to
// outputPath. Nothing is written unless every earlier step succeeded, and no
// step is retried.
func (o *Orchestrator) Run(ctx context.Context, inputPath, outputPath string, variant models.Variant) (models.GenerationResult, error) {
	log := o.logger.With(
		zap.String("variant", variant.Name),
		zap.String("input", inputPath),
		zap.String("output", outputPath),
	)

	data, err := o.store.Read(inputPath)
	if err != nil {
		log.Error("Run(): failed to read input", zap.Error(err))
		return models.GenerationResult{}, &InputIOError{Path: inputPath, Err: err}
	}

	doc, err := validation.DecodeDocument(data)
	if err != nil {
		log.Error("Run(): input is not a JSON object", zap.Error(err))
		return models.GenerationResult{}, &InputShapeError{Path: inputPath, Reason: err.Error()}
	}
	raw, ok := doc[models.UserInfoKey].(map[string]any)
	if !ok {
		log.Error("Run(): input does not contain user_info")
		return models.GenerationResult{}, &InputShapeError{Path: inputPath, Reason: "missing 'user_info' object"}
	}

	profile, err := o.validator.Validate(raw, variant)
	if err != nil {
		log.Error("Run(): invalid input data", zap.Error(err))
		return models.GenerationResult{}, err
	}
	log.Info("Run(): input data validated")

	messages, err := prompt.BuildFor(profile, variant.TemplateKey)
	if err != nil {
		return models.GenerationResult{}, err
	}

	log.Info("Run(): sending request to generation service")
	completion, err := o.generator.Generate(ctx, messages)
	if err != nil {
		log.Error("Run(): generation service call failed", zap.Error(err))
		return models.GenerationResult{}, &GenerationServiceError{Err: err}
	}

	result, err := llm.Sanitize(completion.Text)
	if err != nil {
		var sm *llm.SchemaMismatchError
		if errors.As(err, &sm) {
			log.Error("Run(): model output does not match expected structure", zap.Error(err), zap.String("raw_output", completion.Text))
		} else {
			log.Error("Run(): model output could not be parsed", zap.Error(err), zap.String("raw_output", completion.Text))
		}
		return models.GenerationResult{}, err
	}

	body, err := marshalResult(result)
	if err != nil {
		return models.GenerationResult{}, &OutputIOError{Path: outputPath, Err: err}
	}
	if err := o.store.Write(outputPath, body); err != nil {
		log.Error("Run(): failed to write output", zap.Error(err))
		return models.GenerationResult{}, &OutputIOError{Path: outputPath, Err: err}
	}

	log.Info("Run(): generation completed")
	return result, nil
}

// indent 2, non-ASCII kept as is
func marshalResult(result models.GenerationResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return buf.Bytes(), nil
}
