package relation

// objects resolves the object phrases governed by the action token v.
//
// Unlike subject resolution, every category is additive: direct and indirect
// objects, prepositional objects, the passive surface subject, bare nominal
// adverbials, clausal complement subjects and open complement objects all
// contribute. Only conjunct inheritance is a fallback, used when nothing
// else was found.
func (r *resolver) objects(v int) []Phrase {
	tree := r.tree
	tok := tree.Token(v)

	var objects []Phrase

	// direct objects, attributes, object predicatives, adjectival complements
	for _, c := range tree.Children(v) {
		switch tree.Token(c).Dep {
		case "dobj", "attr", "oprd", "acomp":
			objects = append(objects, r.objectPhrases(c)...)
		}
	}

	// indirect objects
	for _, c := range tree.Children(v) {
		if tree.Token(c).Dep == "iobj" {
			objects = append(objects, r.objectPhrases(c)...)
		}
	}

	// prepositional objects, following coordinated prepositions
	for _, c := range tree.Children(v) {
		if tree.Token(c).Dep != "prep" {
			continue
		}

		chain := append([]int{c}, tree.Conjuncts(c)...)
		for _, p := range chain {
			for _, pobj := range tree.Children(p) {
				if tree.Token(pobj).Dep == "pobj" {
					objects = append(objects, r.objectPhrases(pobj)...)
				}
			}
		}
	}

	// a past verb with a passive subject: the surface subject is the thing
	// acted upon ("the cake was eaten" -> object "cake")
	if (tok.Tag == "VBN" || tok.Tag == "VBD") && r.hasChildDep(v, "nsubjpass") {
		for _, c := range tree.Children(v) {
			if tree.Token(c).Dep == "nsubjpass" {
				objects = append(objects, r.objectPhrases(c)...)
			}
		}
	}

	// bare temporal/locative noun phrases acting as objects
	for _, c := range tree.Children(v) {
		ct := tree.Token(c)
		if ct.Dep == "npadvmod" && (ct.Pos == "PROPN" || ct.Pos == "PRON") {
			objects = append(objects, r.objectPhrases(c)...)
		}
	}

	// the subject of a clausal complement is an object of the governing verb
	// ("I think he left" -> object "he")
	for _, c := range tree.Children(v) {
		if tree.Token(c).Dep != "ccomp" {
			continue
		}

		for _, s := range tree.Children(c) {
			switch tree.Token(s).Dep {
			case "nsubj", "nsubjpass":
				objects = append(objects, r.nominal(s, false)...)
			}
		}
	}

	// open complements delegate: take the xcomp verb's objects, falling back
	// to its bare direct objects
	for _, c := range tree.Children(v) {
		if tree.Token(c).Dep != "xcomp" {
			continue
		}

		xobjs := r.objects(c)
		if len(xobjs) > 0 {
			objects = append(objects, xobjs...)
			continue
		}

		for _, x := range tree.Children(c) {
			switch tree.Token(x).Dep {
			case "dobj", "attr", "oprd":
				objects = append(objects, r.objectPhrases(x)...)
			}
		}
	}

	// inherit from a coordinated verb when nothing was found
	if len(objects) == 0 {
		for _, c := range tree.Children(v) {
			ct := tree.Token(c)
			if ct.Dep != "conj" || ct.Pos != "VERB" {
				continue
			}

			if conjObjs := r.objects(c); len(conjObjs) > 0 {
				objects = append(objects, conjObjs...)
				break
			}
		}
	}

	return r.finish(objects)
}

// objectPhrases expands an object token into phrases, lemmatized. A
// prepositional object keeps its governing preposition as prefix; nominal
// coordinated siblings are added independently.
func (r *resolver) objectPhrases(i int) []Phrase {
	tree := r.tree
	tok := tree.Token(i)

	var phrases []Phrase

	if isNominal(tok.Pos) || tok.Dep == "acomp" {
		phrases = append(phrases, r.prefixed(i, r.phrase(i, true)))
	}

	for _, conj := range tree.Conjuncts(i) {
		ct := tree.Token(conj)
		if isNominal(ct.Pos) || ct.Pos == "ADJ" {
			phrases = append(phrases, r.prefixed(conj, r.phrase(conj, true)))
		}
	}

	return phrases
}

// prefixed prepends the surface text of the governing preposition when the
// token is a prepositional object.
func (r *resolver) prefixed(i int, p Phrase) Phrase {
	if r.tree.Token(i).Dep != "pobj" {
		return p
	}

	p.Main = r.tree.Token(r.tree.Head(i)).Text + " " + p.Main
	return p
}
