package relation

import "strings"

// verbPhrase composes the surface string of the action token v: auxiliaries
// and negation around the lemma, adverbial/adjectival modifiers on both
// sides, and the chain of open complement verbs appended at the end. Vague
// auxiliaries, adverbs and adjectives are filtered at every step.
func (r *resolver) verbPhrase(v int) string {
	return strings.Join(r.verbParts(v), " ")
}

func (r *resolver) verbParts(v int) []string {
	tree := r.tree

	var parts []string

	// leading auxiliaries and negation
	for _, c := range tree.Lefts(v) {
		ct := tree.Token(c)
		if isAuxNeg(ct.Dep) && !r.cfg.VagueAux[ct.Lemma] {
			parts = append(parts, ct.Lemma)
		}
	}

	// leading modifiers, expanded to their compound phrase
	for _, c := range tree.Lefts(v) {
		if r.isVerbModifier(c) {
			parts = append(parts, r.phrase(c, true).Main)
		}
	}

	parts = append(parts, tree.Token(v).Lemma)

	// trailing modifiers
	for _, c := range tree.Rights(v) {
		if r.isVerbModifier(c) {
			parts = append(parts, r.phrase(c, true).Main)
		}
	}

	// trailing auxiliaries and negation
	for _, c := range tree.Rights(v) {
		ct := tree.Token(c)
		if isAuxNeg(ct.Dep) && !r.cfg.VagueAux[ct.Lemma] {
			parts = append(parts, ct.Lemma)
		}
	}

	// verb chaining: the open complement's lemma, then whatever its own
	// phrase adds around that lemma
	for _, c := range tree.Children(v) {
		ct := tree.Token(c)
		if ct.Dep != "xcomp" {
			continue
		}

		parts = append(parts, ct.Lemma)

		removed := false
		for _, w := range r.verbParts(c) {
			if !removed && w == ct.Lemma {
				removed = true
				continue
			}

			parts = append(parts, w)
		}
	}

	return parts
}

func isAuxNeg(dep string) bool {
	return dep == "aux" || dep == "auxpass" || dep == "neg"
}

func (r *resolver) isVerbModifier(c int) bool {
	ct := r.tree.Token(c)

	switch ct.Dep {
	case "advmod", "amod", "npadvmod":
	default:
		return false
	}

	switch ct.Pos {
	case "SCONJ", "CCONJ", "PART", "DET":
		return false
	}

	if r.cfg.VagueAdverbs[ct.Lemma] {
		return false
	}

	if ct.Dep == "amod" && r.cfg.VagueAdjectives[ct.Lemma] {
		return false
	}

	return true
}
