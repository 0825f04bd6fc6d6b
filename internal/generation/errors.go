package generation

import "fmt"

type InputIOError struct {
	Path string
	Err  error
}

func (e *InputIOError) Error() string {
	return fmt.Sprintf("failed to read input file %s: %v", e.Path, e.Err)
}

func (e *InputIOError) Unwrap() error { return e.Err }

// InputShapeError means the stored document is not an object holding user_info.
type InputShapeError struct {
	Path   string
	Reason string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("input file %s has an invalid shape: %s", e.Path, e.Reason)
}

// GenerationServiceError wraps any failure of the single upstream call.
type GenerationServiceError struct {
	Err error
}

func (e *GenerationServiceError) Error() string {
	return fmt.Sprintf("generation service call failed: %v", e.Err)
}

func (e *GenerationServiceError) Unwrap() error { return e.Err }

type OutputIOError struct {
	Path string
	Err  error
}

func (e *OutputIOError) Error() string {
	return fmt.Sprintf("failed to write output file %s: %v", e.Path, e.Err)
}

func (e *OutputIOError) Unwrap() error { return e.Err }
