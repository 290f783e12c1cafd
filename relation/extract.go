package relation

import (
	"fmt"

	sent "github.com/revelaction/whodidwhat/sentence"
	"github.com/revelaction/whodidwhat/synonym"
)

// Extractor turns parsed documents into relation tables. It is stateless
// between calls: extracting the same document twice yields the same table.
type Extractor struct {
	cfg    Config
	oracle synonym.Oracle
}

// New creates an extractor with the default config. The oracle is consulted
// once per document for subjects and once for objects; synonym.None()
// disables the semantic pass.
func New(oracle synonym.Oracle) *Extractor {
	return NewWithConfig(DefaultConfig(), oracle)
}

func NewWithConfig(cfg Config, oracle synonym.Oracle) *Extractor {
	return &Extractor{cfg: cfg, oracle: oracle}
}

// Document extracts the full relation table of a parsed document: the
// syntactic rows of every sentence in traversal order, followed by the
// semantic rows of the synonym pass.
//
// An oracle failure aborts the extraction; a table with a silently missing
// semantic layer would be worse than no table.
func (e *Extractor) Document(doc sent.Doc) (Table, error) {
	var table Table

	// distinct subjects and objects across the document, first-seen order
	subjectSeen := map[string]bool{}
	objectSeen := map[string]bool{}
	var subjectNodes, objectNodes []string

	for _, s := range doc.Sentences {
		for _, svo := range e.Sentence(s) {
			table = append(table, rows(svo)...)

			for _, p := range svo.Subjects {
				if !subjectSeen[p.Main] {
					subjectSeen[p.Main] = true
					subjectNodes = append(subjectNodes, p.Main)
				}
			}

			for _, p := range svo.Objects {
				if !objectSeen[p.Main] {
					objectSeen[p.Main] = true
					objectNodes = append(objectNodes, p.Main)
				}
			}
		}
	}

	semantic, err := e.semanticRows(subjectNodes, objectNodes)
	if err != nil {
		return nil, err
	}

	table = append(table, semantic...)
	return table, nil
}

// rows cross-products one SVO into its syntactic relation rows. All rows
// share the SVO's trace string.
func rows(svo SVO) Table {
	trace := svo.Trace()

	var table Table

	for _, subj := range svo.Subjects {
		table = append(table, Row{
			Node1:      subj.Main,
			Role1:      Who,
			Node2:      svo.Verb,
			Role2:      Did,
			Trace:      trace,
			Provenance: Syntactic,
		})
	}

	for _, obj := range svo.Objects {
		table = append(table, Row{
			Node1:      svo.Verb,
			Role1:      Did,
			Node2:      obj.Main,
			Role2:      What,
			Trace:      trace,
			Provenance: Syntactic,
		})
	}

	// pairwise co-subject and co-object relations
	for i := 0; i < len(svo.Subjects); i++ {
		for j := i + 1; j < len(svo.Subjects); j++ {
			table = append(table, Row{
				Node1:      svo.Subjects[i].Main,
				Role1:      Who,
				Node2:      svo.Subjects[j].Main,
				Role2:      Who,
				Trace:      trace,
				Provenance: Syntactic,
			})
		}
	}

	for i := 0; i < len(svo.Objects); i++ {
		for j := i + 1; j < len(svo.Objects); j++ {
			table = append(table, Row{
				Node1:      svo.Objects[i].Main,
				Role1:      What,
				Node2:      svo.Objects[j].Main,
				Role2:      What,
				Trace:      trace,
				Provenance: Syntactic,
			})
		}
	}

	return table
}

func (e *Extractor) semanticRows(subjects, objects []string) (Table, error) {
	var table Table

	pairs, err := e.oracle.Relate(subjects)
	if err != nil {
		return nil, fmt.Errorf("subject synonym pass: %w", err)
	}

	for _, p := range pairs {
		table = append(table, Row{
			Node1:      p.A,
			Role1:      Who,
			Node2:      p.B,
			Role2:      Who,
			Trace:      TraceNone,
			Provenance: Semantic,
		})
	}

	pairs, err = e.oracle.Relate(objects)
	if err != nil {
		return nil, fmt.Errorf("object synonym pass: %w", err)
	}

	for _, p := range pairs {
		table = append(table, Row{
			Node1:      p.A,
			Role1:      What,
			Node2:      p.B,
			Role2:      What,
			Trace:      TraceNone,
			Provenance: Semantic,
		})
	}

	return table, nil
}
