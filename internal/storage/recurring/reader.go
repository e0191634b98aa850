package recurring

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []string{
	"id", "type", "amount", "description", "category_id", "account_id", "user_id",
	"frequency", "start_date", "end_date", "next_due_date", "is_active",
	"created_at", "updated_at", "deleted_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a recurring definition scoped to its owner. Returns nil
// when absent or owned by another user.
func (r *Reader) FindByID(ctx context.Context, id, userID uuid.UUID) (*RecurringTransaction, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[RecurringTransaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByUser returns the user's recurring definitions, newest first.
func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*RecurringTransaction, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("created_at").Desc(),
	)
	return collect(ctx, r.exec, q)
}

// ListDue returns active definitions whose next due date has passed.
func (r *Reader) ListDue(ctx context.Context, now time.Time) ([]*RecurringTransaction, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("next_due_date").IsNotNull()),
		sm.Where(psql.Quote("next_due_date").LTE(psql.Arg(now))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("next_due_date").Asc(),
	)
	return collect(ctx, r.exec, q)
}

func collect(ctx context.Context, exec bob.Executor, q bob.Query) ([]*RecurringTransaction, error) {
	rows, err := bob.All(ctx, exec, q, scan.StructMapper[RecurringTransaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*RecurringTransaction, len(rows))
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
