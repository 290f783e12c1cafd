// Package query is the interactive REPL over an extracted relation table.
package query

import (
	"fmt"
	"strings"

	"github.com/revelaction/whodidwhat/filter"
	"github.com/revelaction/whodidwhat/relation"
	"github.com/revelaction/whodidwhat/render"

	prompt "github.com/c-bata/go-prompt"
)

type Handler struct {
	Table    relation.Table
	Renderer *render.Renderer
}

func NewHandler(t relation.Table, r *render.Renderer) *Handler {
	return &Handler{
		Table:    t,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	// completion candidates: the distinct nodes of the table
	nodes := h.nodes()

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(nodes),
			prompt.OptionTitle("whodidwhat query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Println("Prefix set to " + fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		expr, err := filter.Parse(strings.Fields(in))
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		matched := filter.Apply(h.Table, expr)
		if len(matched) == 0 {
			fmt.Println("no relations")
			continue
		}

		if err := h.Renderer.Render(matched); err != nil {
			return err
		}
	}
}

// nodes returns the distinct nodes of the table, subjects first, then verbs,
// then objects.
func (h *Handler) nodes() []string {
	var nodes []string
	nodes = append(nodes, h.Table.Subjects()...)
	nodes = append(nodes, h.Table.Verbs()...)
	nodes = append(nodes, h.Table.Objects()...)
	return nodes
}

func (h *Handler) completer(nodes []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		word := in.GetWordBeforeCursor()

		// Only complete when something was typed
		if "" == word {
			return s
		}

		// role prefixes and provenance keywords
		for _, kw := range []string{"who:", "did:", "what:", "semantic", "syntactic"} {
			if strings.HasPrefix(kw, strings.ToLower(word)) {
				s = append(s, prompt.Suggest{Text: kw})
			}
		}

		// node completion, including after a role prefix
		rest := word
		rolePrefix := ""
		if i := strings.Index(word, ":"); i >= 0 {
			rolePrefix = word[:i+1]
			rest = word[i+1:]
		}

		for _, n := range nodes {
			if strings.HasPrefix(strings.ToLower(n), strings.ToLower(rest)) {
				s = append(s, prompt.Suggest{Text: rolePrefix + n})
			}
		}

		return s
	}
}
