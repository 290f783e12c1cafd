// Package filter selects rows of a relation table with small expressions
// typed on the command line or in the query REPL.
//
// An expression is a sequence of items with AND semantics:
//
//	who:alice did:eat cake !fork semantic
//
// A role item (who:, did:, what:) matches rows where a node with that role
// contains the given text. A bare word matches either node. A leading '!'
// negates the item. The keywords "semantic" and "syntactic" restrict the
// provenance.
package filter

import (
	"errors"
	"strings"

	"github.com/revelaction/whodidwhat/relation"
)

type Expr []Item

type Item struct {
	// Node is the text the node must contain, case insensitive.
	Node string

	// Role restricts the item to nodes of that role. Empty matches any role.
	Role relation.Role

	// Negate inverts the item.
	Negate bool

	// Provenance restricts the row's provenance, when set.
	Provenance *relation.Provenance
}

// Parse converts the user input tokens to an Expr.
func Parse(args []string) (Expr, error) {
	var expr Expr

	for _, arg := range args {
		if arg == "" {
			continue
		}

		item := Item{}

		if strings.HasPrefix(arg, "!") {
			item.Negate = true
			arg = strings.TrimPrefix(arg, "!")
			if arg == "" {
				return nil, errors.New("dangling negation")
			}
		}

		switch strings.ToLower(arg) {
		case "semantic":
			p := relation.Semantic
			item.Provenance = &p
			expr = append(expr, item)
			continue
		case "syntactic":
			p := relation.Syntactic
			item.Provenance = &p
			expr = append(expr, item)
			continue
		}

		if role, rest, ok := splitRole(arg); ok {
			if rest == "" {
				return nil, errors.New("role prefix needs a word: " + arg)
			}

			item.Role = role
			item.Node = rest
		} else {
			item.Node = arg
		}

		expr = append(expr, item)
	}

	if len(expr) == 0 {
		return nil, errors.New("empty expression")
	}

	return expr, nil
}

func splitRole(arg string) (relation.Role, string, bool) {
	prefix, rest, found := strings.Cut(arg, ":")
	if !found {
		return "", "", false
	}

	switch strings.ToLower(prefix) {
	case "who":
		return relation.Who, rest, true
	case "did":
		return relation.Did, rest, true
	case "what":
		return relation.What, rest, true
	}

	return "", "", false
}

// Match reports whether the row satisfies every item of the expression.
func (e Expr) Match(row relation.Row) bool {
	for _, item := range e {
		if item.matches(row) == item.Negate {
			return false
		}
	}

	return true
}

func (i Item) matches(row relation.Row) bool {
	if i.Provenance != nil {
		return row.Provenance == *i.Provenance
	}

	node := strings.ToLower(i.Node)

	if i.Role == "" || row.Role1 == i.Role {
		if strings.Contains(strings.ToLower(row.Node1), node) {
			return true
		}
	}

	if i.Role == "" || row.Role2 == i.Role {
		if strings.Contains(strings.ToLower(row.Node2), node) {
			return true
		}
	}

	return false
}

// Apply returns the rows of the table matching the expression, preserving
// order.
func Apply(t relation.Table, e Expr) relation.Table {
	var out relation.Table
	for _, row := range t {
		if e.Match(row) {
			out = append(out, row)
		}
	}

	return out
}
