package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/whodidwhat/relation"
	sent "github.com/revelaction/whodidwhat/sentence"
)

const Defaultformat = "rel"

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"

	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"rel", "trace"}
}

// TableRenderer renders a relation table to some output.
type TableRenderer interface {
	Render(t relation.Table) error
}

// Renderer prints relation tables as text.
type Renderer struct {
	W io.Writer

	HasColor bool

	// HasPrefix prepends the provenance marker and doc info to every row
	HasPrefix bool

	// Format determines the row format
	//
	// rel: node1 (role1) -> node2 (role2)
	// trace: rel plus the originating extraction trace
	Format string

	DocNames map[int]string
}

func NewRenderer() *Renderer {
	return &Renderer{
		W:        os.Stdout,
		Format:   Defaultformat,
		DocNames: map[int]string{},
	}
}

var _ TableRenderer = (*Renderer)(nil)

func (r *Renderer) AddDocName(docId int, name string) {
	r.DocNames[docId] = name
}

// Render prints one row per line.
func (r *Renderer) Render(t relation.Table) error {
	for _, row := range t {
		if _, err := fmt.Fprintln(r.W, r.row(row)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) row(row relation.Row) string {
	var b strings.Builder

	if r.HasPrefix {
		b.WriteString(r.prefix(row))
	}

	b.WriteString(fmt.Sprintf("%s (%s) → %s (%s)",
		r.color(row.Node1, row.Role1),
		row.Role1,
		r.color(row.Node2, row.Role2),
		row.Role2,
	))

	if r.Format == "trace" && row.Trace != relation.TraceNone {
		b.WriteString("  ")
		if r.HasColor {
			b.WriteString(Grey256 + row.Trace + Off)
		} else {
			b.WriteString(row.Trace)
		}
	}

	return b.String()
}

func (r *Renderer) prefix(row relation.Row) string {
	switch row.Provenance {
	case relation.Semantic:
		return "🔗 "
	default:
		return "✍  "
	}
}

func (r *Renderer) color(node string, role relation.Role) string {
	if !r.HasColor {
		return node
	}

	switch role {
	case relation.Who:
		return Green256 + node + Off
	case relation.Did:
		return Yellow256 + node + Off
	default:
		return Teal + node + Off
	}
}

// Sentence prints the original text of a sentence, reconstructed from the
// token character offsets.
func (r *Renderer) Sentence(tokens []sent.Token, prefix string) {
	fmt.Fprintf(r.W, "%s%s\n", prefix, strings.ReplaceAll(r.sentence(tokens), "\n", " "))
}

func (r *Renderer) sentence(tokens []sent.Token) string {
	var str strings.Builder
	var lastIdx, lastLen int
	for _, token := range tokens {
		l := len([]rune(token.Text))
		if lastIdx == 0 {
			str.WriteString(token.Text)
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		// multi token words share text and idx; printing only on a positive
		// offset difference avoids rendering the text twice
		diff := token.Idx - lastIdx

		if diff > 0 {
			if pad := diff - lastLen; pad > 0 {
				str.WriteString(strings.Repeat(" ", pad))
			}
			str.WriteString(token.Text)
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return str.String()
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {
	// toggle
	r.HasPrefix = !r.HasPrefix
}
