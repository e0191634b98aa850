package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	Reader
}

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{Reader{exec: exec}}
}

var _ Store = (*Writer)(nil)

// Insert creates a new category and returns the stored row.
func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into("categories", "name", "type", "is_default", "user_id", "parent_id"),
		im.Values(psql.Arg(create.Name, string(create.Type), create.IsDefault, create.UserID, create.ParentID)),
		im.Returning(toAnySlice(columns)...),
	)
	row, err := bob.One(ctx, w.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update persists the mutable fields of an existing category.
func (w *Writer) Update(ctx context.Context, category *Category) error {
	q := psql.Update(
		um.Table("categories"),
		um.SetCol("name").ToArg(category.Name),
		um.SetCol("type").ToArg(string(category.Type)),
		um.SetCol("parent_id").ToArg(category.ParentID),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(category.ID))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// SoftDelete marks a category deleted without removing the row.
func (w *Writer) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table("categories"),
		um.SetCol("deleted_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}
