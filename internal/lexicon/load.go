package lexicon

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-scanner/internal/schemas"
)

// LoadFile reads a JSON lexicon override from path, validates it against the
// lexicon schema and merges it over the built-in lexicon.
func LoadFile(path string) (*Lexicon, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	override, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("invalid lexicon file %s: %w", path, err)
	}

	return Default().Merge(*override), nil
}

// Parse validates and decodes lexicon override JSON
func Parse(content []byte) (*Data, error) {
	if err := schemas.ValidateLexicon(content); err != nil {
		return nil, err
	}

	var data Data
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lexicon JSON: %w", err)
	}
	return &data, nil
}
