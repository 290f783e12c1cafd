package relation

import (
	sent "github.com/revelaction/whodidwhat/sentence"
)

// tk builds a test token. Index doubles as Id; Head is the index of the head
// token, the root points at itself.
func tk(index int, text, lemma, pos, tag, dep string, head int) sent.Token {
	return sent.Token{
		Id:    index,
		Index: index,
		Text:  text,
		Lemma: lemma,
		Pos:   pos,
		Tag:   tag,
		Dep:   dep,
		Head:  head,
	}
}

func newResolver(tokens []sent.Token) *resolver {
	return &resolver{tree: sent.NewTree(tokens), cfg: DefaultConfig()}
}

func mains(phrases []Phrase) []string {
	var out []string
	for _, p := range phrases {
		out = append(out, p.Main)
	}

	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// "Alice and Bob left"
func aliceAndBobLeft() []sent.Token {
	return []sent.Token{
		tk(0, "Alice", "Alice", "PROPN", "NNP", "nsubj", 3),
		tk(1, "and", "and", "CCONJ", "CC", "cc", 0),
		tk(2, "Bob", "Bob", "PROPN", "NNP", "conj", 0),
		tk(3, "left", "leave", "VERB", "VBD", "ROOT", 3),
	}
}

// "The cake was eaten by Alice"
func cakeEatenByAlice() []sent.Token {
	return []sent.Token{
		tk(0, "The", "the", "DET", "DT", "det", 1),
		tk(1, "cake", "cake", "NOUN", "NN", "nsubjpass", 3),
		tk(2, "was", "be", "AUX", "VBD", "auxpass", 3),
		tk(3, "eaten", "eat", "VERB", "VBN", "ROOT", 3),
		tk(4, "by", "by", "ADP", "IN", "agent", 3),
		tk(5, "Alice", "Alice", "PROPN", "NNP", "pobj", 4),
	}
}

// "Close the door"
func closeTheDoor() []sent.Token {
	return []sent.Token{
		tk(0, "Close", "close", "VERB", "VB", "ROOT", 0),
		tk(1, "the", "the", "DET", "DT", "det", 2),
		tk(2, "door", "door", "NOUN", "NN", "dobj", 0),
	}
}
