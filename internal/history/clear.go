package history

import (
	"database/sql"
	"fmt"

	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
)

// ClearHistory deletes all recorded runs and file metrics from the backend.
// Table schemas stay in place.
func ClearHistory(backend schema.DatabaseBackend, connStr string) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("no history to clear for NoneBackend")
	}

	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetHistoryDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
	case schema.MySQLBackend:
		db, err = sql.Open("mysql", connStr)
	case schema.PostgreSQLBackend:
		db, err = sql.Open("pgx", connStr)
	default:
		return fmt.Errorf("unsupported backend: %s", backend)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", backend, err)
	}

	// Metrics rows reference runs, so they go first.
	for _, table := range []string{fileMetricsTable, runsTable} {
		query := fmt.Sprintf("DELETE FROM %s", quoteTableName(table, backend))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	return nil
}
