package storagetest

import (
	"context"

	"github.com/hoaikthai/fin-api/internal/storage"
)

// Operator runs actions synchronously against the in-memory DB with the
// same commit-or-rollback contract as the real worker queue.
type Operator struct {
	DB *DB
}

func NewOperator(db *DB) *Operator {
	return &Operator{DB: db}
}

func (o *Operator) Process(ctx context.Context, action storage.Action) error {
	writer, err := o.DB.Write(ctx)
	if err != nil {
		return err
	}
	if err := action.Perform(ctx, writer); err != nil {
		_ = writer.Rollback(ctx)
		return err
	}
	return writer.Commit(ctx)
}
