package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/whodidwhat/relation"
)

// JSONRenderer writes a relation table as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the table as a JSON array. An empty table renders as
// [], never null, so consumers always get an array.
func (r *JSONRenderer) Render(t relation.Table) error {
	if t == nil {
		t = relation.Table{}
	}

	return json.NewEncoder(r.W).Encode(t)
}

// compile-time interface check
var _ TableRenderer = (*JSONRenderer)(nil)
