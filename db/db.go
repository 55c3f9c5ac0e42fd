package db

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB holds the database connection
var DB *sqlx.DB

const schema = `
CREATE TABLE IF NOT EXISTS cart_slots (
	key     TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
	id                TEXT PRIMARY KEY,
	company_name      TEXT NOT NULL,
	contact_person    TEXT NOT NULL,
	email             TEXT NOT NULL UNIQUE,
	mobile            TEXT NOT NULL DEFAULT '',
	business_category TEXT NOT NULL DEFAULT 'N/A',
	proposal_count    INTEGER NOT NULL DEFAULT 1,
	joined_at         TIMESTAMP NOT NULL
);
`

// InitDB opens the local store and bootstraps the schema. The store is a
// single SQLite file: the durable slot for the confirmed cart plus the lead
// log, nothing more.
func InitDB() error {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "proposals.db"
	}

	var err error
	DB, err = sqlx.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Printf("✓ Local store ready at %s", path)
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
