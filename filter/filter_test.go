package filter

import (
	"testing"

	"github.com/revelaction/whodidwhat/relation"
)

var table = relation.Table{
	{Node1: "Alice", Role1: relation.Who, Node2: "eat", Role2: relation.Did, Trace: "[Alice] [eat] [cake]", Provenance: relation.Syntactic},
	{Node1: "eat", Role1: relation.Did, Node2: "cake", Role2: relation.What, Trace: "[Alice] [eat] [cake]", Provenance: relation.Syntactic},
	{Node1: "Alice", Role1: relation.Who, Node2: "Bob", Role2: relation.Who, Trace: relation.TraceNone, Provenance: relation.Semantic},
}

func TestParseRolePrefix(t *testing.T) {
	expr, err := Parse([]string{"who:alice"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(expr) != 1 {
		t.Fatalf("items: got %d, want 1", len(expr))
	}

	item := expr[0]
	if item.Role != relation.Who || item.Node != "alice" || item.Negate {
		t.Errorf("item: got %+v", item)
	}
}

func TestParseBareWordAndNegation(t *testing.T) {
	expr, err := Parse([]string{"cake", "!fork"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(expr) != 2 {
		t.Fatalf("items: got %d, want 2", len(expr))
	}

	if expr[0].Node != "cake" || expr[0].Role != "" {
		t.Errorf("bare item: got %+v", expr[0])
	}

	if expr[1].Node != "fork" || !expr[1].Negate {
		t.Errorf("negated item: got %+v", expr[1])
	}
}

func TestParseProvenanceKeywords(t *testing.T) {
	expr, err := Parse([]string{"semantic"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if expr[0].Provenance == nil || *expr[0].Provenance != relation.Semantic {
		t.Errorf("item: got %+v", expr[0])
	}

	expr, err = Parse([]string{"!syntactic"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !expr[0].Negate || expr[0].Provenance == nil || *expr[0].Provenance != relation.Syntactic {
		t.Errorf("item: got %+v", expr[0])
	}
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		nil,
		{""},
		{"!"},
		{"who:"},
	}

	for _, args := range cases {
		if _, err := Parse(args); err == nil {
			t.Errorf("parse %v: expected error", args)
		}
	}
}

func TestApplyRole(t *testing.T) {
	expr, err := Parse([]string{"who:alice"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got := Apply(table, expr)
	if len(got) != 2 {
		t.Fatalf("rows: got %d, want 2", len(got))
	}

	// "did:alice" must not match: Alice never carries the Did role
	expr, err = Parse([]string{"did:alice"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := Apply(table, expr); len(got) != 0 {
		t.Errorf("rows: got %v, want none", got)
	}
}

func TestApplyBareWordEitherSide(t *testing.T) {
	expr, err := Parse([]string{"eat"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := Apply(table, expr); len(got) != 2 {
		t.Errorf("rows: got %d, want 2", len(got))
	}
}

func TestApplyConjunction(t *testing.T) {
	expr, err := Parse([]string{"who:alice", "syntactic"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got := Apply(table, expr)
	if len(got) != 1 {
		t.Fatalf("rows: got %d, want 1", len(got))
	}

	if got[0] != table[0] {
		t.Errorf("row: got %+v", got[0])
	}
}

func TestApplyNegation(t *testing.T) {
	expr, err := Parse([]string{"!semantic"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := Apply(table, expr); len(got) != 2 {
		t.Errorf("rows: got %d, want 2", len(got))
	}

	expr, err = Parse([]string{"!cake"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := Apply(table, expr); len(got) != 2 {
		t.Errorf("rows: got %d, want 2", len(got))
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	expr, err := Parse([]string{"ALICE"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !expr.Match(table[0]) {
		t.Error("expected case insensitive match")
	}
}
