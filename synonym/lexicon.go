package synonym

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Lexicon is a sense lexicon: every sense id maps to the words that carry
// that sense. Two words are synonymous when they share a sense, or when
// their senses share a word.
type Lexicon struct {
	senses map[string][]string

	// word -> sense ids carrying it
	byWord map[string][]string
}

var _ Oracle = (*Lexicon)(nil)

// NewLexicon builds a lexicon from sense id -> words.
func NewLexicon(senses map[string][]string) *Lexicon {
	byWord := map[string][]string{}
	for id, words := range senses {
		for _, w := range words {
			byWord[norm(w)] = append(byWord[norm(w)], id)
		}
	}

	return &Lexicon{senses: senses, byWord: byWord}
}

// LoadLexicon reads a JSON lexicon file of the form
//
//	{"animal.n.01": ["cat", "feline"], "leave.v.01": ["leave", "depart"]}
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("synonym lexicon: %w", err)
	}

	var senses map[string][]string
	if err := json.Unmarshal(f, &senses); err != nil {
		return nil, fmt.Errorf("synonym lexicon %s: %w", path, err)
	}

	return NewLexicon(senses), nil
}

func (l *Lexicon) Relate(words []string) ([]Pair, error) {
	var pairs []Pair
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			if l.areSynonyms(words[i], words[j]) {
				pairs = append(pairs, Pair{A: words[i], B: words[j]})
			}
		}
	}

	return pairs, nil
}

func (l *Lexicon) areSynonyms(a, b string) bool {
	sa := l.byWord[norm(a)]
	sb := l.byWord[norm(b)]
	if len(sa) == 0 || len(sb) == 0 {
		return false
	}

	// shared sense
	for _, ida := range sa {
		for _, idb := range sb {
			if ida == idb {
				return true
			}
		}
	}

	// senses sharing a word
	for _, ida := range sa {
		for _, wa := range l.senses[ida] {
			for _, idb := range sb {
				for _, wb := range l.senses[idb] {
					if norm(wa) == norm(wb) {
						return true
					}
				}
			}
		}
	}

	return false
}

func norm(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
