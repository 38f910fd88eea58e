package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"alert-listener-go/internal/config"
)

// NewPostgresDB opens the document-store connection pool
func NewPostgresDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.DBMaxConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxConns)
	}
	if cfg.DBMaxIdle > 0 {
		db.SetMaxIdleConns(cfg.DBMaxIdle)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
