// Package synonym defines the shared-sense oracle used by the semantic pass
// of the relation extraction.
//
// The oracle works on word sets rather than single pairs: the extraction
// hands over all distinct subjects (or objects) of a document at once, and
// the oracle answers with the symmetric pairs that share a sense. This keeps
// the quadratic pair checking inside the oracle, where an implementation can
// batch or cache as it sees fit.
package synonym

import "fmt"

// Pair is an unordered pair of synonymous words. A and B keep the order of
// the input word set.
type Pair struct {
	A string
	B string
}

// Oracle reports which words of a set share a sense.
//
// Relate must be symmetric and must preserve the input order: for words i <
// j of the input, a reported pair is {words[i], words[j]}, and pairs are
// reported in input order. An unavailable oracle returns an error; callers
// treat that as a hard failure, never as "no synonyms".
type Oracle interface {
	Relate(words []string) ([]Pair, error)
}

// Func adapts a pairwise predicate to the Oracle interface.
type Func func(a, b string) (bool, error)

func (f Func) Relate(words []string) ([]Pair, error) {
	var pairs []Pair
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			ok, err := f(words[i], words[j])
			if err != nil {
				return nil, fmt.Errorf("synonym check %q/%q: %w", words[i], words[j], err)
			}

			if ok {
				pairs = append(pairs, Pair{A: words[i], B: words[j]})
			}
		}
	}

	return pairs, nil
}

// None is an oracle that never relates words. Used when no sense lexicon is
// configured; the semantic pass then adds no rows.
func None() Oracle {
	return Func(func(a, b string) (bool, error) {
		return false, nil
	})
}
