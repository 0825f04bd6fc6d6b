package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrMalformedJSON = errors.New("invalid JSON document")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field of one record.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e.Fields), strings.Join(parts, "; "))
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

// Messages maps field name to its reasons, the shape used in HTTP details.
func (e *ValidationError) Messages() map[string][]string {
	out := make(map[string][]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = append(out[f.Field], f.Message)
	}
	return out
}

func (e *ValidationError) sortBy(order []string) {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	sort.SliceStable(e.Fields, func(i, j int) bool {
		ri, ok := rank[e.Fields[i].Field]
		if !ok {
			ri = len(order)
		}
		rj, ok := rank[e.Fields[j].Field]
		if !ok {
			rj = len(order)
		}
		return ri < rj
	})
}
