package main

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite file holding both the persisted settings and the
// drug inventory.
type Database struct {
	DB *sql.DB
}

// OpenDatabase opens (creating if needed) the sqlite database at path and
// ensures the schema exists.
func OpenDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	d := &Database{DB: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.seedDrugs(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS user_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS drugs (
			name TEXT PRIMARY KEY,
			stock REAL NOT NULL DEFAULT 0,
			monthly_use REAL NOT NULL DEFAULT 0
		);`,
	}
	for _, q := range queries {
		if _, err := d.DB.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// defaultDBPath returns the per-user database location, creating the
// directory if needed.
func defaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cfg, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}
