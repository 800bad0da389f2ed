// Package onboarding loads the static introduction cards.
package onboarding

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jask/bestnotes/internal/flow"
)

//go:embed cards.yaml
var defaultCards []byte

// Card is one onboarding slide.
type Card struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Emoji    string `yaml:"emoji"`
}

type document struct {
	Cards []Card `yaml:"cards"`
}

// Load returns the built-in cards.
func Load() ([]Card, error) {
	return Parse(defaultCards)
}

// MustLoad is Load for callers that treat a broken build as fatal.
func MustLoad() []Card {
	cards, err := Load()
	if err != nil {
		panic(err)
	}
	return cards
}

// Parse decodes a cards document. It must hold exactly flow.Pages cards,
// each with a title.
func Parse(data []byte) ([]Card, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	if len(doc.Cards) != flow.Pages {
		return nil, fmt.Errorf("want %d onboarding cards, got %d", flow.Pages, len(doc.Cards))
	}
	for i, c := range doc.Cards {
		if strings.TrimSpace(c.Title) == "" {
			return nil, fmt.Errorf("card %d: missing title", i)
		}
	}
	return doc.Cards, nil
}
