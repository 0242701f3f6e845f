package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// Connect opens the PostgreSQL connection pool and verifies it with a ping.
// The pool handle is returned even when the ping fails, so the server can
// start without the database and fail on first use instead.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return db, err
	}

	log.Println("✅ Connected to PostgreSQL")
	return db, nil
}

// InitTables creates the tables and indexes if they don't exist.
// Safe to call multiple times.
func InitTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS form_submissions (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id),
			form_type VARCHAR(50) NOT NULL,
			message TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_form_submissions_user_id ON form_submissions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_form_submissions_created_at ON form_submissions(created_at)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}
