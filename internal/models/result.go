package models

// GenerationResult is the only shape accepted back from the generator.
type GenerationResult struct {
	MotivationalSentence string `json:"motivational_sentence"`
}

const MotivationalSentenceKey = "motivational_sentence"
