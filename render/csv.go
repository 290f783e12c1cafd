package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/revelaction/whodidwhat/relation"
)

// csvHeader is the fixed column contract of the relation table.
var csvHeader = []string{"Node1", "Role1", "Node2", "Role2", "Trace", "Provenance"}

// CSVRenderer writes a relation table as CSV to a writer, one row per
// relation, header first.
type CSVRenderer struct {
	W io.Writer
}

func NewCSVRenderer(w io.Writer) *CSVRenderer {
	return &CSVRenderer{W: w}
}

func (r *CSVRenderer) Render(t relation.Table) error {
	w := csv.NewWriter(r.W)

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range t {
		record := []string{
			row.Node1,
			string(row.Role1),
			row.Node2,
			string(row.Role2),
			row.Trace,
			strconv.Itoa(int(row.Provenance)),
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// compile-time interface check
var _ TableRenderer = (*CSVRenderer)(nil)
