package relation

import (
	"sort"
	"strings"

	sent "github.com/revelaction/whodidwhat/sentence"
)

// resolver walks one sentence tree. It is created per sentence and holds no
// state besides the tree and the config, so every resolution is a pure
// function of the parse.
type resolver struct {
	tree *sent.Tree
	cfg  Config
}

// bare articles carry no information in a phrase
var bareDeterminers = map[string]bool{"the": true, "a": true, "an": true}

func (r *resolver) word(i int, lemmatize bool) string {
	tok := r.tree.Token(i)
	if lemmatize {
		return tok.Lemma
	}

	return tok.Text
}

// phrase assembles the compound phrase of token i: determiners, relative
// clause markers and subjects, modifiers up to two levels deep, and the token
// word itself. Prepositional attachments are collected separately into the
// Preps list, flattened (a prep inside a prepositional object lands in the
// same list, not nested).
//
// lemmatize selects between lemma and surface form for every collected word
// except prepositions, which always keep their surface text.
func (r *resolver) phrase(i int, lemmatize bool) Phrase {
	tree := r.tree
	tok := tree.Token(i)

	var parts []string
	var preps []string

	// determiners, minus the bare articles
	for _, c := range tree.Children(i) {
		ct := tree.Token(c)
		if ct.Dep == "det" && !bareDeterminers[ct.Lemma] {
			parts = append(parts, r.word(c, lemmatize))
		}
	}

	// relative/clausal modifiers contribute their marker word and, when the
	// clause has one, its own subject phrase
	for _, c := range tree.Children(i) {
		ct := tree.Token(c)
		if ct.Dep != "acl" && ct.Dep != "relcl" {
			continue
		}

		for _, m := range tree.Children(c) {
			if tree.Token(m).Dep == "mark" {
				parts = append(parts, r.word(m, lemmatize))
			}
		}

		for _, s := range tree.Children(c) {
			if tree.Token(s).Dep != "nsubj" {
				continue
			}

			p := r.phrase(s, lemmatize)
			parts = append(parts, p.Main)
			preps = append(preps, p.Preps...)
		}
	}

	// modifiers of the token, of the modifiers, and of those again. Deeper
	// nesting is cut off to bound the phrase size.
	verbalHead := tok.Pos == "VERB" || tok.Pos == "AUX"
	var modifiers []int
	for _, c := range tree.Children(i) {
		if !isModifier(tree.Token(c), verbalHead) {
			continue
		}

		modifiers = append(modifiers, c)
		modifiers = append(modifiers, r.adjConjuncts(c)...)

		for _, g := range tree.Children(c) {
			if isNestedModifier(tree.Token(g)) {
				modifiers = append(modifiers, g)
				modifiers = append(modifiers, r.adjConjuncts(g)...)
			}

			for _, gg := range tree.Children(g) {
				if isNestedModifier(tree.Token(gg)) {
					modifiers = append(modifiers, gg)
					modifiers = append(modifiers, r.adjConjuncts(gg)...)
				}
			}
		}
	}

	// order by sentence position, not traversal order
	sort.Ints(modifiers)
	for _, m := range modifiers {
		parts = append(parts, r.word(m, lemmatize))
	}

	parts = append(parts, r.word(i, lemmatize))

	// prepositional attachments and their coordinated siblings
	for _, c := range tree.Children(i) {
		if tree.Token(c).Dep != "prep" {
			continue
		}

		chain := append([]int{c}, tree.Conjuncts(c)...)
		for _, p := range chain {
			prep := []string{tree.Token(p).Text}

			for _, po := range tree.Children(p) {
				if tree.Token(po).Dep != "pobj" {
					continue
				}

				pchain := append([]int{po}, tree.Conjuncts(po)...)
				for _, item := range pchain {
					ip := r.phrase(item, lemmatize)
					prep = append(prep, ip.Main)
					// nested preps are flattened into the same phrase
					prep = append(prep, ip.Preps...)
				}
			}

			preps = append(preps, strings.Join(prep, " "))
		}
	}

	return Phrase{Main: strings.Join(parts, " "), Preps: preps}
}

func isModifier(t sent.Token, verbalHead bool) bool {
	switch t.Pos {
	case "SCONJ", "CCONJ", "PART":
		return false
	}

	switch t.Dep {
	case "compound", "amod", "nmod":
		return true
	case "advmod", "npadvmod":
		// adverbial modifiers only decorate verbal heads
		return verbalHead
	}

	return false
}

func isNestedModifier(t sent.Token) bool {
	switch t.Dep {
	case "compound", "nmod", "advmod", "amod", "npadvmod":
		return true
	}

	return false
}

// adjConjuncts returns the coordinated adjectives of a modifier ("a red and
// blue flag" picks up "blue" when visiting "red").
func (r *resolver) adjConjuncts(i int) []int {
	var out []int
	for _, c := range r.tree.Conjuncts(i) {
		ct := r.tree.Token(c)
		if ct.Pos == "ADJ" && ct.Dep == "conj" {
			out = append(out, c)
		}
	}

	return out
}

// clause flattens the full subtree of token i into one lemma string, ordered
// by sentence position.
func (r *resolver) clause(i int) string {
	var lemmas []string
	for _, t := range r.tree.Subtree(i) {
		lemmas = append(lemmas, r.tree.Token(t).Lemma)
	}

	return strings.Join(lemmas, " ")
}
