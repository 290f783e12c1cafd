package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/whodidwhat/relation"
	"github.com/revelaction/whodidwhat/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type RelationStore struct {
	pool *sqlitex.Pool
}

var _ storage.RelationRepository = (*RelationStore)(nil)

func NewRelationStore(pool *sqlitex.Pool) *RelationStore {
	return &RelationStore{pool: pool}
}

func (h *RelationStore) Relations(docId int) (relation.Table, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	return h.query(conn, "SELECT node1, role1, node2, role2, trace, provenance FROM relations WHERE doc_id = ? ORDER BY rowid", docId)
}

func (h *RelationStore) AllRelations() (relation.Table, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	return h.query(conn, "SELECT node1, role1, node2, role2, trace, provenance FROM relations ORDER BY doc_id, rowid")
}

func (h *RelationStore) query(conn *sqlite.Conn, sql string, args ...interface{}) (relation.Table, error) {
	var table relation.Table
	err := sqlitex.Execute(conn, sql, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			table = append(table, relation.Row{
				Node1:      stmt.ColumnText(0),
				Role1:      relation.Role(stmt.ColumnText(1)),
				Node2:      stmt.ColumnText(2),
				Role2:      relation.Role(stmt.ColumnText(3)),
				Trace:      stmt.ColumnText(4),
				Provenance: relation.Provenance(stmt.ColumnInt(5)),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

// WriteRelations replaces the stored table of the doc inside one
// transaction, so a failed extraction never leaves a half-written table.
func (h *RelationStore) WriteRelations(docId int, t relation.Table) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM relations WHERE doc_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{docId},
	})
	if err != nil {
		return fmt.Errorf("failed to clear relations: %w", err)
	}

	for _, row := range t {
		err = sqlitex.Execute(conn,
			"INSERT INTO relations (doc_id, node1, role1, node2, role2, trace, provenance) VALUES (?, ?, ?, ?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []interface{}{docId, row.Node1, string(row.Role1), row.Node2, string(row.Role2), row.Trace, int(row.Provenance)},
			})
		if err != nil {
			return fmt.Errorf("failed to insert relation: %w", err)
		}
	}

	return nil
}
