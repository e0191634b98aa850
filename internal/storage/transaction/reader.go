package transaction

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
	"transaction_date", "related_transaction_id", "recurring_transaction_id",
	"created_at", "updated_at", "deleted_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a transaction scoped to its owner. Returns nil when the
// transaction is absent or owned by another user.
func (r *Reader) FindByID(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByUserSince returns the user's transactions with a transaction date at
// or after since, newest first.
func (r *Reader) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(since))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)
	return collect(ctx, r.exec, q)
}

// ListByAccountSince is ListByUserSince narrowed to one account.
func (r *Reader) ListByAccountSince(ctx context.Context, accountID, userID uuid.UUID, since time.Time) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("transactions"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(since))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)
	return collect(ctx, r.exec, q)
}

// CountByCategory counts live transactions recorded under a category.
func (r *Reader) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
}

func collect(ctx context.Context, exec bob.Executor, q bob.Query) ([]*Transaction, error) {
	rows, err := bob.All(ctx, exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
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
