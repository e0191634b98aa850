package category

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
	"id", "name", "type", "is_default", "user_id", "parent_id",
	"created_at", "updated_at", "deleted_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a category by primary key. Returns nil when absent.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// FindDefaultByName retrieves a default category by its seeded name and type.
// Returns nil when absent.
func (r *Reader) FindDefaultByName(ctx context.Context, name string, categoryType Type) (*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(string(categoryType)))),
		sm.Where(psql.Quote("is_default").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListVisibleTo returns the user's own categories plus the global defaults,
// ordered by name.
func (r *Reader) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID)).Or(psql.Quote("is_default").EQ(psql.Arg(true)))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("name").Asc(),
	)
	return collect(ctx, r.exec, q)
}

// ListVisibleToByType is ListVisibleTo narrowed to one category type.
func (r *Reader) ListVisibleToByType(ctx context.Context, userID uuid.UUID, categoryType Type) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID)).Or(psql.Quote("is_default").EQ(psql.Arg(true)))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(string(categoryType)))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("name").Asc(),
	)
	return collect(ctx, r.exec, q)
}

// CountChildren counts live categories whose parent is the given category.
func (r *Reader) CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("categories"),
		sm.Where(psql.Quote("parent_id").EQ(psql.Arg(parentID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
}

// CountDefaults counts seeded default categories.
func (r *Reader) CountDefaults(ctx context.Context) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("categories"),
		sm.Where(psql.Quote("is_default").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
}

func collect(ctx context.Context, exec bob.Executor, q bob.Query) ([]*Category, error) {
	rows, err := bob.All(ctx, exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
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
