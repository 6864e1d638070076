package postgres

import (
	"database/sql"
	"time"

	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// Store implements the Storage interface on top of PostgreSQL.
type Store struct {
	DB *sql.DB
}

// New creates a new Store.
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// Open dials PostgreSQL and verifies the connection, retrying while the
// database comes up.
func Open(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	const maxRetries = 10
	for i := 1; i <= maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}
		time.Sleep(2 * time.Second)
	}

	return nil, err
}
