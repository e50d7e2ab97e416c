package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

var ErrNotFound = errors.New("document not found")

// PgStore reads source documents from Postgres.
type PgStore struct {
	db *sql.DB
}

func NewPgStore(conn string) (*PgStore, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &PgStore{db: db}, nil
}

// Document returns the content stored under name.
func (s *PgStore) Document(ctx context.Context, name string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx, selectDocument, name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

func (s *PgStore) Close() error {
	return s.db.Close()
}
