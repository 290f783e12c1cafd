package sentence

import (
	"reflect"
	"testing"
)

func tok(index int, text, dep string, head int) Token {
	return Token{Id: index, Index: index, Text: text, Dep: dep, Head: head}
}

// "Alice saw cats and dogs"
func sawCatsAndDogs() []Token {
	return []Token{
		tok(0, "Alice", "nsubj", 1),
		tok(1, "saw", "ROOT", 1),
		tok(2, "cats", "dobj", 1),
		tok(3, "and", "cc", 2),
		tok(4, "dogs", "conj", 2),
	}
}

func TestTreeChildren(t *testing.T) {
	tree := NewTree(sawCatsAndDogs())

	if got, want := tree.Children(1), []int{0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("children of 1: got %v, want %v", got, want)
	}

	if got, want := tree.Children(2), []int{3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("children of 2: got %v, want %v", got, want)
	}

	if got := tree.Children(0); len(got) != 0 {
		t.Errorf("children of 0: got %v, want none", got)
	}
}

func TestTreeLeftsRights(t *testing.T) {
	tree := NewTree(sawCatsAndDogs())

	if got, want := tree.Lefts(1), []int{0}; !reflect.DeepEqual(got, want) {
		t.Errorf("lefts: got %v, want %v", got, want)
	}

	if got, want := tree.Rights(1), []int{2}; !reflect.DeepEqual(got, want) {
		t.Errorf("rights: got %v, want %v", got, want)
	}
}

func TestTreeHeadAndRoot(t *testing.T) {
	tree := NewTree(sawCatsAndDogs())

	if got := tree.Head(0); got != 1 {
		t.Errorf("head of 0: got %d, want 1", got)
	}

	// the root points at itself
	if got := tree.Head(1); got != 1 {
		t.Errorf("head of root: got %d, want 1", got)
	}

	if !tree.IsRoot(1) || tree.IsRoot(2) {
		t.Error("root detection failed")
	}

	if got := tree.Root(); got != 1 {
		t.Errorf("root: got %d, want 1", got)
	}
}

func TestTreeRootEmpty(t *testing.T) {
	tree := NewTree(nil)

	if got := tree.Root(); got != -1 {
		t.Errorf("root of empty: got %d, want -1", got)
	}
}

func TestTreeAncestors(t *testing.T) {
	tree := NewTree(sawCatsAndDogs())

	if got, want := tree.Ancestors(4), []int{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("ancestors: got %v, want %v", got, want)
	}

	if got := tree.Ancestors(1); len(got) != 0 {
		t.Errorf("ancestors of root: got %v, want none", got)
	}
}

func TestTreeConjuncts(t *testing.T) {
	tree := NewTree(sawCatsAndDogs())

	// from either end of the coordination, the other member is found
	if got, want := tree.Conjuncts(2), []int{4}; !reflect.DeepEqual(got, want) {
		t.Errorf("conjuncts of 2: got %v, want %v", got, want)
	}

	if got, want := tree.Conjuncts(4), []int{2}; !reflect.DeepEqual(got, want) {
		t.Errorf("conjuncts of 4: got %v, want %v", got, want)
	}

	if got := tree.Conjuncts(0); len(got) != 0 {
		t.Errorf("conjuncts of 0: got %v, want none", got)
	}
}

func TestTreeConjunctsChain(t *testing.T) {
	// "apples, pears and grapes"
	tokens := []Token{
		tok(0, "apples", "ROOT", 0),
		tok(1, ",", "punct", 0),
		tok(2, "pears", "conj", 0),
		tok(3, "and", "cc", 2),
		tok(4, "grapes", "conj", 2),
	}

	tree := NewTree(tokens)

	if got, want := tree.Conjuncts(2), []int{0, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("conjuncts: got %v, want %v", got, want)
	}
}

func TestTreeConjunctsCycle(t *testing.T) {
	// malformed parse: two tokens that are each other's conj head
	tokens := []Token{
		{Id: 0, Index: 0, Dep: "conj", Head: 1},
		{Id: 1, Index: 1, Dep: "conj", Head: 0},
	}

	tree := NewTree(tokens)

	// must terminate and exclude the token itself
	for i := 0; i < 2; i++ {
		for _, c := range tree.Conjuncts(i) {
			if c == i {
				t.Errorf("conjuncts of %d contain itself", i)
			}
		}
	}
}

func TestTreeSubtree(t *testing.T) {
	tree := NewTree(sawCatsAndDogs())

	if got, want := tree.Subtree(2), []int{2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("subtree of 2: got %v, want %v", got, want)
	}

	if got, want := tree.Subtree(1), []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("subtree of root: got %v, want %v", got, want)
	}
}

func TestTreeOutOfRangeHead(t *testing.T) {
	tokens := []Token{
		{Id: 0, Index: 0, Dep: "nsubj", Head: 9},
	}

	tree := NewTree(tokens)

	if got := tree.Head(0); got != 0 {
		t.Errorf("head: got %d, want self", got)
	}
}

func TestHasMorph(t *testing.T) {
	tests := []struct {
		morph   string
		feature string
		want    bool
	}{
		{"Mood=Imp|VerbForm=Fin", "Mood=Imp", true},
		{"Mood=Imp|VerbForm=Fin", "VerbForm=Fin", true},
		{"Mood=Imp|VerbForm=Fin", "Mood=Ind", false},
		{"Mood=Imp|VerbForm=Fin", "Mood", false},
		{"", "Mood=Imp", false},
		{"Mood=Imp", "Mood=Imp", true},
	}

	for _, tc := range tests {
		tok := Token{Morph: tc.morph}
		if got := tok.HasMorph(tc.feature); got != tc.want {
			t.Errorf("HasMorph(%q) on %q: got %v, want %v", tc.feature, tc.morph, got, tc.want)
		}
	}
}
