package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stress-checker/internal/scoring"
)

// Question is one item of the instrument as shown to the user. Number
// is the 1-based position; it lines up with the answer vector index.
type Question struct {
	Number int    `yaml:"number"`
	Text   string `yaml:"text"`
}

// Instrument holds the static question set and the five option labels,
// loaded once at startup and immutable afterwards.
type Instrument struct {
	Questions []Question `yaml:"questions"`
	Options   []string   `yaml:"options"`
}

// LoadInstrument reads and validates the questions file. The instrument
// is fixed at ten questions on a five-point scale; anything else in the
// file is a deployment mistake, not a supported configuration.
func LoadInstrument(path string) (*Instrument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instrument file: %w", err)
	}

	var instrument Instrument
	if err := yaml.Unmarshal(data, &instrument); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instrument YAML: %w", err)
	}

	if len(instrument.Questions) != scoring.NumQuestions {
		return nil, fmt.Errorf("instrument must have exactly %d questions, got %d",
			scoring.NumQuestions, len(instrument.Questions))
	}
	if len(instrument.Options) != 5 {
		return nil, fmt.Errorf("instrument must have exactly 5 options, got %d", len(instrument.Options))
	}
	for i, q := range instrument.Questions {
		if q.Number != i+1 {
			return nil, fmt.Errorf("question %d carries number %d", i+1, q.Number)
		}
		if q.Text == "" {
			return nil, fmt.Errorf("question %d has no text", i+1)
		}
	}

	return &instrument, nil
}
