package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []string{
	"id", "name", "currency", "balance", "description", "is_active", "user_id",
	"created_at", "updated_at", "deleted_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves an account scoped to its owner. Returns nil when the
// account is absent or owned by another user.
func (r *Reader) FindByID(ctx context.Context, id, userID uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByUser returns the user's accounts, newest first.
func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Account, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("created_at").Desc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func toAnySlice(cols []string) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
