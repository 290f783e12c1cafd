// Package stat summarizes a relation table: the distinct subject, verb and
// object nodes with their valence scores, plus row counts per provenance.
package stat

import (
	"github.com/revelaction/whodidwhat/relation"
	"github.com/revelaction/whodidwhat/valence"
)

// Entry is one distinct node with its valence score.
type Entry struct {
	Node    string
	Valence float64
}

// Summary aggregates one relation table.
type Summary struct {
	NumRows      int
	NumSyntactic int
	NumSemantic  int

	Subjects []Entry
	Verbs    []Entry
	Objects  []Entry
}

type Handler struct {
	scorer  valence.Scorer
	summary Summary
}

func NewHandler(scorer valence.Scorer) *Handler {
	return &Handler{scorer: scorer}
}

func (h *Handler) Get() Summary {
	return h.summary
}

// Aggregate adds the rows of a table to the summary. Node sets keep
// first-seen order across repeated calls.
func (h *Handler) Aggregate(t relation.Table) {
	h.summary.NumRows += len(t)
	for _, r := range t {
		switch r.Provenance {
		case relation.Syntactic:
			h.summary.NumSyntactic++
		case relation.Semantic:
			h.summary.NumSemantic++
		}
	}

	h.summary.Subjects = h.merge(h.summary.Subjects, t.Subjects())
	h.summary.Verbs = h.merge(h.summary.Verbs, t.Verbs())
	h.summary.Objects = h.merge(h.summary.Objects, t.Objects())
}

func (h *Handler) merge(entries []Entry, nodes []string) []Entry {
	seen := map[string]bool{}
	for _, e := range entries {
		seen[e.Node] = true
	}

	for _, n := range nodes {
		if seen[n] {
			continue
		}

		seen[n] = true
		entries = append(entries, Entry{Node: n, Valence: h.scorer.Score(n)})
	}

	return entries
}
