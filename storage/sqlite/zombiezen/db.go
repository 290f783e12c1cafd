package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens the SQLite connection pool shared by the doc and relation
// stores, sized to the CPU count. The default sqlitex flags include
// OpenCreate and OpenWAL, so the database file is created on first use.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	initString := fmt.Sprintf("file:%s", dbPath)

	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open pool at %s: %w", dbPath, err)
	}
	return pool, nil
}
