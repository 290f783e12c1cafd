// Package relation extracts "who did what" relation tables from parsed
// sentences.
//
// The extraction walks the dependency tree of every sentence, identifies the
// action tokens (verbs, auxiliaries) and resolves for each one its subjects,
// its composed verb phrase and its objects. Subjects and verb, and verb and
// objects, are cross-producted into relation rows; a second, document-wide
// pass adds synonym rows between subjects and between objects.
package relation

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/whodidwhat/sentence"
)

// Role of a node inside a relation row.
type Role string

const (
	Who  Role = "Who"
	Did  Role = "Did"
	What Role = "What"
)

// Provenance marks how a row was derived.
type Provenance int

const (
	// Syntactic rows come from the dependency structure of one sentence.
	Syntactic Provenance = 0

	// Semantic rows come from the synonym pass over the whole document.
	Semantic Provenance = 1
)

// TraceNone is the trace sentinel for rows that have no originating
// extraction (semantic rows).
const TraceNone = "N/A"

// Row is one relation between two nodes.
type Row struct {
	Node1      string     `json:"node1"`
	Role1      Role       `json:"role1"`
	Node2      string     `json:"node2"`
	Role2      Role       `json:"role2"`
	Trace      string     `json:"trace"`
	Provenance Provenance `json:"provenance"`
}

// Table is the ordered relation table of one document. Insertion order
// follows token traversal order; semantic rows are appended at the end.
type Table []Row

// Subjects returns the distinct Who nodes of the table, in first-seen order.
func (t Table) Subjects() []string {
	return t.distinct(func(r Row) (string, bool) {
		if r.Role1 == Who {
			return r.Node1, true
		}
		return "", false
	})
}

// Objects returns the distinct What nodes of the table, in first-seen order.
func (t Table) Objects() []string {
	return t.distinct(func(r Row) (string, bool) {
		if r.Role2 == What {
			return r.Node2, true
		}
		return "", false
	})
}

// Verbs returns the distinct Did nodes of the table, in first-seen order.
// A Did node can appear on either side of a row.
func (t Table) Verbs() []string {
	seen := map[string]bool{}
	var verbs []string
	for _, r := range t {
		if r.Role1 == Did && !seen[r.Node1] {
			seen[r.Node1] = true
			verbs = append(verbs, r.Node1)
		}

		if r.Role2 == Did && !seen[r.Node2] {
			seen[r.Node2] = true
			verbs = append(verbs, r.Node2)
		}
	}

	return verbs
}

func (t Table) distinct(pick func(Row) (string, bool)) []string {
	seen := map[string]bool{}
	var nodes []string
	for _, r := range t {
		node, ok := pick(r)
		if !ok || seen[node] {
			continue
		}

		seen[node] = true
		nodes = append(nodes, node)
	}

	return nodes
}

// Phrase is an assembled multi-word phrase: the main string plus the
// prepositional phrases attached to it. A Phrase is built fresh per
// extraction call and never mutated afterwards.
type Phrase struct {
	Main  string   `json:"main"`
	Preps []string `json:"preps,omitempty"`
}

func (p Phrase) String() string {
	if len(p.Preps) == 0 {
		return p.Main
	}

	return p.Main + " | " + strings.Join(p.Preps, ", ")
}

// SVO is the raw extraction result for one action token, before being
// cross-producted into rows.
type SVO struct {
	Subjects []Phrase
	Verb     string
	Objects  []Phrase
}

// Trace renders the SVO as the human readable trace string shared by all
// rows derived from it.
func (s SVO) Trace() string {
	return fmt.Sprintf("[%s] [%s] [%s]", joinPhrases(s.Subjects), s.Verb, joinPhrases(s.Objects))
}

func joinPhrases(ps []Phrase) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}

	return strings.Join(parts, "; ")
}

// Sentence extracts the raw SVO triples of one sentence, one per qualifying
// action token, in token order.
func (e *Extractor) Sentence(s sent.Sentence) []SVO {
	tree := sent.NewTree(s.Tokens)
	r := &resolver{tree: tree, cfg: e.cfg}

	var svos []SVO
	for i := 0; i < tree.Len(); i++ {
		if !qualifies(tree, i) {
			continue
		}

		svos = append(svos, SVO{
			Subjects: r.subjects(i),
			Verb:     r.verbPhrase(i),
			Objects:  r.objects(i),
		})
	}

	return svos
}

// qualifies reports whether token i is an action token worth extracting.
// Auxiliaries and modifiers that carry a verbal POS are skipped, as well as
// conjuncts hanging off such tokens.
func qualifies(tree *sent.Tree, i int) bool {
	tok := tree.Token(i)
	if tok.Pos != "VERB" && tok.Pos != "AUX" {
		return false
	}

	switch tok.Dep {
	case "aux", "auxpass", "amod", "npadvmod", "prep", "xcomp", "csubj":
		return false
	}

	if tok.Dep == "conj" {
		switch tree.Token(tree.Head(i)).Dep {
		case "aux", "auxpass", "amod", "prep", "xcomp", "csubj":
			return false
		}
	}

	return true
}
