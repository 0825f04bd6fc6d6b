package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// MockClient answers without any network call. Useful for local runs.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, messages []Message) (Completion, error) {
	if err := ctx.Err(); err != nil {
		return Completion{}, err
	}

	name := "you"
	for _, msg := range messages {
		if msg.Role != RoleUser {
			continue
		}
		var profile struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(msg.Content), &profile); err == nil && profile.Name != "" {
			name = profile.Name
		}
	}

	sentence := fmt.Sprintf("%s, every small step you take today brings you closer to the moments you are waiting for.", name)
	body, err := json.Marshal(map[string]string{"motivational_sentence": sentence})
	if err != nil {
		return Completion{}, err
	}
	return Completion{Text: "Here is your sentence:\n" + string(body)}, nil
}
