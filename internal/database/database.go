package database

import (
	"fmt"

	"quizdeck/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

func init() {
	// modernc.org/sqlite registers as "sqlite", which sqlx does not know
	// a bindvar type for.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// NewSQLXSQLiteDB opens the SQLite database file behind the DSN and
// verifies the connection.
func NewSQLXSQLiteDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// SQLite allows a single writer; one pooled connection keeps every
	// statement on it and leaves contention to the busy timeout.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	logger.Get().Info("Connected to SQLite database")
	return db, nil
}
