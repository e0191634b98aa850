package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/hoaikthai/fin-api/internal/config"
)

// Storage owns the database handle and the read-side stores. Writes go
// through Write, which opens a transaction-scoped Writer.
type Storage struct {
	db     bob.DB
	Reader *Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}

	db := bob.NewDB(sqlDB)
	return &Storage{
		db:     db,
		Reader: NewReader(db),
	}, nil
}

// Write begins a database transaction and returns a Writer bound to it. The
// caller owns the transaction and must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: begin transaction: %w", err)
	}
	return newTxWriter(tx), nil
}
