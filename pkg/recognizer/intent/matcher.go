package intent

import (
	"errors"
	"fmt"
	"strings"
)

// Matcher maps a final transcript to an intent.
type Matcher interface {
	Match(text string) (intentID string, ok bool)
}

type Intent struct {
	ID      string   `yaml:"id"`
	Phrases []string `yaml:"phrases"`
}

var _ Matcher = (*PhraseMatcher)(nil)

// PhraseMatcher matches a transcript containing one of an intent's phrases,
// ignoring case. Intents are tried in declaration order.
type PhraseMatcher struct {
	intents []Intent
}

func NewPhraseMatcher(intents []Intent) (*PhraseMatcher, error) {
	normalized := make([]Intent, 0, len(intents))
	seen := make(map[string]struct{}, len(intents))
	for _, in := range intents {
		if in.ID == "" {
			return nil, errors.New("intent ID must be specified")
		}
		if _, ok := seen[in.ID]; ok {
			return nil, fmt.Errorf("duplicate intent ID: %s", in.ID)
		}
		seen[in.ID] = struct{}{}

		phrases := make([]string, 0, len(in.Phrases))
		for _, p := range in.Phrases {
			p = strings.ToLower(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			phrases = append(phrases, p)
		}
		if len(phrases) == 0 {
			return nil, fmt.Errorf("intent %s has no phrases", in.ID)
		}
		normalized = append(normalized, Intent{ID: in.ID, Phrases: phrases})
	}
	return &PhraseMatcher{intents: normalized}, nil
}

func (m *PhraseMatcher) Match(text string) (string, bool) {
	text = strings.ToLower(text)
	for _, in := range m.intents {
		for _, p := range in.Phrases {
			if strings.Contains(text, p) {
				return in.ID, true
			}
		}
	}
	return "", false
}
