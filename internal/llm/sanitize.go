package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"MotivationGenerator/internal/models"
)

var (
	nonPrintable = regexp.MustCompile(`[^\x20-\x7E\n]`)
	whitespace   = regexp.MustCompile(`\s+`)
	jsonClosure  = regexp.MustCompile(`(?s)\{.*\}`)
)

// MalformedGenerationError means the extracted candidate is not valid JSON.
type MalformedGenerationError struct {
	Raw       string
	Candidate string
	Err       error
}

func (e *MalformedGenerationError) Error() string {
	return fmt.Sprintf("generated text is not valid JSON: %v", e.Err)
}

func (e *MalformedGenerationError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError means the JSON parsed but has no motivational_sentence
// value. An empty string is still a sentence.
type SchemaMismatchError struct {
	Raw    string
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	return "generated JSON does not match the expected structure: " + e.Reason
}

// NormalizeText drops non-printable characters and collapses whitespace.
func NormalizeText(text string) string {
	text = nonPrintable.ReplaceAllString(text, "")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractJSON returns the greedy first-"{" to last-"}" span, or "{}".
func ExtractJSON(text string) string {
	if match := jsonClosure.FindString(text); match != "" {
		return match
	}
	return "{}"
}

// Sanitize recovers a GenerationResult from untrusted generated text.
func Sanitize(raw string) (models.GenerationResult, error) {
	candidate := ExtractJSON(NormalizeText(raw))

	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return models.GenerationResult{}, &MalformedGenerationError{Raw: raw, Candidate: candidate, Err: err}
	}
	if dec.More() {
		return models.GenerationResult{}, &MalformedGenerationError{
			Raw:       raw,
			Candidate: candidate,
			Err:       fmt.Errorf("unexpected data after the JSON object"),
		}
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return models.GenerationResult{}, &SchemaMismatchError{Raw: raw, Reason: "top-level value is not an object"}
	}
	value, ok := obj[models.MotivationalSentenceKey]
	if !ok {
		return models.GenerationResult{}, &SchemaMismatchError{Raw: raw, Reason: models.MotivationalSentenceKey + " is missing"}
	}
	sentence, ok := coerceString(value)
	if !ok {
		return models.GenerationResult{}, &SchemaMismatchError{Raw: raw, Reason: models.MotivationalSentenceKey + " is null"}
	}
	return models.GenerationResult{MotivationalSentence: sentence}, nil
}

// 숫자 등 문자열이 아닌 값은 문자열로 변환
func coerceString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(x); err != nil {
			return "", false
		}
		return strings.TrimSpace(buf.String()), true
	}
}
