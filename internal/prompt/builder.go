package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"MotivationGenerator/internal/llm"
	"MotivationGenerator/internal/models"
)

// Build returns the system + user message pair for one generation call.
// Profile fields only ever travel as JSON in the user turn, never inside the
// system instruction.
func Build(profile models.UserProfile, template Template) ([]llm.Message, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(profile); err != nil {
		return nil, fmt.Errorf("failed to serialize profile: %w", err)
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: template.Instructions},
		{Role: llm.RoleUser, Content: string(bytes.TrimSpace(buf.Bytes()))},
	}, nil
}

// BuildFor looks the template up by key first.
func BuildFor(profile models.UserProfile, key string) ([]llm.Message, error) {
	template, ok := GetTemplate(key)
	if !ok {
		return nil, fmt.Errorf("unknown prompt template %q", key)
	}
	return Build(profile, template)
}
