// Package valence scores phrases with a sentiment value. The relation
// extraction itself never uses valence; the stat summaries attach a score to
// every distinct subject, verb and object node.
package valence

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Scorer scores a word or phrase. Implementations must be pure: the same
// phrase always gets the same score.
type Scorer interface {
	Score(phrase string) float64
}

// Lexicon scores a phrase as the sum of the scores of its known words.
// Unknown words score zero.
type Lexicon map[string]float64

var _ Scorer = Lexicon(nil)

func (l Lexicon) Score(phrase string) float64 {
	var score float64
	for _, w := range strings.Fields(phrase) {
		score += l[strings.ToLower(w)]
	}

	return score
}

// Load reads a JSON lexicon file of the form {"good": 0.7, "bad": -0.6}.
func Load(path string) (Lexicon, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("valence lexicon: %w", err)
	}

	var l Lexicon
	if err := json.Unmarshal(f, &l); err != nil {
		return nil, fmt.Errorf("valence lexicon %s: %w", path, err)
	}

	return l, nil
}

// Neutral scores everything zero.
func Neutral() Scorer {
	return Lexicon(nil)
}
