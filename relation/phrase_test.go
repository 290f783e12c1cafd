package relation

import (
	"testing"

	sent "github.com/revelaction/whodidwhat/sentence"
)

func TestPhraseCompounds(t *testing.T) {
	tokens := []sent.Token{
		tk(0, "computer", "computer", "NOUN", "NN", "compound", 1),
		tk(1, "science", "science", "NOUN", "NN", "compound", 2),
		tk(2, "teacher", "teacher", "NOUN", "NN", "ROOT", 2),
	}

	r := newResolver(tokens)

	got := r.phrase(2, true)
	if got.Main != "computer science teacher" {
		t.Errorf("phrase: got %q, want %q", got.Main, "computer science teacher")
	}
}

func TestPhraseModifierDepthCutoff(t *testing.T) {
	// four compounds deep: only three levels below the head survive
	tokens := []sent.Token{
		tk(0, "a", "a", "NOUN", "NN", "compound", 1),
		tk(1, "b", "b", "NOUN", "NN", "compound", 2),
		tk(2, "c", "c", "NOUN", "NN", "compound", 3),
		tk(3, "d", "d", "NOUN", "NN", "compound", 4),
		tk(4, "e", "e", "NOUN", "NN", "ROOT", 4),
	}

	r := newResolver(tokens)

	got := r.phrase(4, true)
	if got.Main != "b c d e" {
		t.Errorf("phrase: got %q, want %q", got.Main, "b c d e")
	}
}

func TestPhraseDeterminers(t *testing.T) {
	// bare articles are dropped, demonstratives are kept
	tokens := []sent.Token{
		tk(0, "this", "this", "DET", "DT", "det", 2),
		tk(1, "red", "red", "ADJ", "JJ", "amod", 2),
		tk(2, "apple", "apple", "NOUN", "NN", "ROOT", 2),
	}

	r := newResolver(tokens)

	got := r.phrase(2, true)
	if got.Main != "this red apple" {
		t.Errorf("phrase: got %q, want %q", got.Main, "this red apple")
	}

	bare := []sent.Token{
		tk(0, "the", "the", "DET", "DT", "det", 1),
		tk(1, "apple", "apple", "NOUN", "NN", "ROOT", 1),
	}

	r = newResolver(bare)

	if got := r.phrase(1, true); got.Main != "apple" {
		t.Errorf("phrase: got %q, want %q", got.Main, "apple")
	}
}

func TestPhrasePrepositionalAttachment(t *testing.T) {
	// "house in the woods": the preposition keeps its surface text, the
	// object is lemmatized
	tokens := []sent.Token{
		tk(0, "house", "house", "NOUN", "NN", "ROOT", 0),
		tk(1, "in", "in", "ADP", "IN", "prep", 0),
		tk(2, "the", "the", "DET", "DT", "det", 3),
		tk(3, "woods", "wood", "NOUN", "NNS", "pobj", 1),
	}

	r := newResolver(tokens)

	got := r.phrase(0, true)
	if got.Main != "house" {
		t.Errorf("main: got %q, want %q", got.Main, "house")
	}

	if !equalStrings(got.Preps, []string{"in wood"}) {
		t.Errorf("preps: got %v, want %v", got.Preps, []string{"in wood"})
	}

	if s := got.String(); s != "house | in wood" {
		t.Errorf("string: got %q, want %q", s, "house | in wood")
	}
}

func TestPhraseCoordinatedAdjectives(t *testing.T) {
	// "a red and blue flag"
	tokens := []sent.Token{
		tk(0, "a", "a", "DET", "DT", "det", 4),
		tk(1, "red", "red", "ADJ", "JJ", "amod", 4),
		tk(2, "and", "and", "CCONJ", "CC", "cc", 1),
		tk(3, "blue", "blue", "ADJ", "JJ", "conj", 1),
		tk(4, "flag", "flag", "NOUN", "NN", "ROOT", 4),
	}

	r := newResolver(tokens)

	got := r.phrase(4, true)
	if got.Main != "red blue flag" {
		t.Errorf("phrase: got %q, want %q", got.Main, "red blue flag")
	}
}

func TestPhraseRelativeClauseMarker(t *testing.T) {
	// "the fact that Bob left": marker and clause subject join the phrase
	tokens := []sent.Token{
		tk(0, "the", "the", "DET", "DT", "det", 1),
		tk(1, "fact", "fact", "NOUN", "NN", "ROOT", 1),
		tk(2, "that", "that", "SCONJ", "IN", "mark", 4),
		tk(3, "Bob", "Bob", "PROPN", "NNP", "nsubj", 4),
		tk(4, "left", "leave", "VERB", "VBD", "acl", 1),
	}

	r := newResolver(tokens)

	got := r.phrase(1, false)
	if got.Main != "that Bob fact" {
		t.Errorf("phrase: got %q, want %q", got.Main, "that Bob fact")
	}
}

func TestPhraseSurfaceVersusLemma(t *testing.T) {
	tokens := []sent.Token{
		tk(0, "dogs", "dog", "NOUN", "NNS", "ROOT", 0),
	}

	r := newResolver(tokens)

	if got := r.phrase(0, false); got.Main != "dogs" {
		t.Errorf("surface: got %q, want %q", got.Main, "dogs")
	}

	if got := r.phrase(0, true); got.Main != "dog" {
		t.Errorf("lemma: got %q, want %q", got.Main, "dog")
	}
}
