package relation

// subjects resolves the subject phrases governing the action token v.
//
// The branches mirror the grammatical ways a subject can relate to a verb:
// relative clauses take the modified noun, passives take the agent, bare
// conjunct and subordinate verbs inherit from their surroundings, and a root
// imperative defaults to "you". Branches after the relative clause one are
// additive; the inheritance branches only fire while nothing was found.
func (r *resolver) subjects(v int) []Phrase {
	tree := r.tree
	tok := tree.Token(v)

	var subjects []Phrase

	// A verb modifying a noun (relative or clausal modifier) is governed by
	// its own subject when it has one, otherwise by the modified noun. No
	// other branch applies.
	if tok.Dep == "acl" || tok.Dep == "relcl" {
		found := false
		for _, c := range tree.Children(v) {
			if tree.Token(c).Dep == "nsubj" {
				found = true
				subjects = append(subjects, r.nominal(c, false)...)
			}
		}

		if !found {
			subjects = append(subjects, r.phrase(tree.Head(v), false))
		}

		return r.finish(subjects)
	}

	// direct nominal subjects
	for _, c := range tree.Children(v) {
		if tree.Token(c).Dep == "nsubj" {
			subjects = append(subjects, r.nominal(c, false)...)
		}
	}

	// clausal subjects: the whole clause, flattened to lemmas
	for _, c := range tree.Children(v) {
		if tree.Token(c).Dep == "csubj" {
			subjects = append(subjects, Phrase{Main: r.clause(c)})
		}
	}

	// passive: the object of the agent's "by" phrase is the logical subject
	if r.hasChildDep(v, "nsubjpass") {
		for _, agent := range tree.Children(v) {
			if tree.Token(agent).Dep != "agent" {
				continue
			}

			for _, pobj := range tree.Children(agent) {
				if tree.Token(pobj).Dep == "pobj" {
					subjects = append(subjects, r.nominal(pobj, false)...)
				}
			}
		}
	}

	// inherit the subject of the nearest ancestor clause that has one
	if len(subjects) == 0 {
	ANCESTOR:
		for _, anc := range tree.Ancestors(v) {
			for _, c := range tree.Children(anc) {
				switch tree.Token(c).Dep {
				case "nsubj", "nsubjpass", "csubj":
					subjects = append(subjects, r.nominal(c, false)...)
					if len(subjects) > 0 {
						break ANCESTOR
					}
				}
			}
		}
	}

	// a conjunct verb shares the subject of the verb it coordinates with
	if len(subjects) == 0 && tok.Dep == "conj" {
		head := tree.Head(v)
		if tree.Token(head).Pos == "VERB" {
			subjects = r.subjects(head)
		}
	}

	// nominal conjuncts hanging directly off the verb act as extra subjects
	for _, c := range tree.Children(v) {
		ct := tree.Token(c)
		if ct.Dep == "conj" && isNominal(ct.Pos) {
			subjects = append(subjects, r.nominal(c, false)...)
		}
	}

	// imperative root: implicit second person
	if len(subjects) == 0 && tree.IsRoot(v) {
		if tok.HasMorph("Mood=Imp") || tok.Tag == "VB" {
			subjects = append(subjects, Phrase{Main: "you"})
		}
	}

	return r.finish(subjects)
}

// nominal expands a subject or object token into phrases: the token itself
// when it is a noun, proper noun or pronoun, plus each of its nominal
// coordinated siblings, independently assembled.
func (r *resolver) nominal(i int, lemmatize bool) []Phrase {
	var phrases []Phrase

	if isNominal(r.tree.Token(i).Pos) {
		phrases = append(phrases, r.phrase(i, lemmatize))
	}

	for _, conj := range r.tree.Conjuncts(i) {
		if isNominal(r.tree.Token(conj).Pos) {
			phrases = append(phrases, r.phrase(conj, lemmatize))
		}
	}

	return phrases
}

func isNominal(pos string) bool {
	return pos == "NOUN" || pos == "PROPN" || pos == "PRON"
}

func (r *resolver) hasChildDep(i int, dep string) bool {
	for _, c := range r.tree.Children(i) {
		if r.tree.Token(c).Dep == dep {
			return true
		}
	}

	return false
}

// finish applies the optional dedup post-filter. The additive branches can
// produce the same phrase more than once; duplicates are kept unless the
// config asks otherwise.
func (r *resolver) finish(phrases []Phrase) []Phrase {
	if !r.cfg.Dedup {
		return phrases
	}

	seen := map[string]bool{}
	var out []Phrase
	for _, p := range phrases {
		key := p.String()
		if seen[key] {
			continue
		}

		seen[key] = true
		out = append(out, p)
	}

	return out
}
