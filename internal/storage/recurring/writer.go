package recurring

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

// Insert creates a new recurring definition and returns the stored row.
func (w *Writer) Insert(ctx context.Context, create *RecurringCreate) (*RecurringTransaction, error) {
	q := psql.Insert(
		im.Into("recurring_transactions",
			"type", "amount", "description", "category_id", "account_id", "user_id",
			"frequency", "start_date", "end_date", "next_due_date", "is_active",
		),
		im.Values(psql.Arg(
			string(create.Type), create.Amount, create.Description, create.CategoryID,
			create.AccountID, create.UserID, string(create.Frequency), create.StartDate,
			create.EndDate, create.NextDueDate, create.IsActive,
		)),
		im.Returning(toAnySlice(columns)...),
	)
	row, err := bob.One(ctx, w.exec, q, scan.StructMapper[RecurringTransaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update persists the mutable fields of an existing recurring definition.
func (w *Writer) Update(ctx context.Context, recurring *RecurringTransaction) error {
	q := psql.Update(
		um.Table("recurring_transactions"),
		um.SetCol("type").ToArg(string(recurring.Type)),
		um.SetCol("amount").ToArg(recurring.Amount),
		um.SetCol("description").ToArg(recurring.Description),
		um.SetCol("category_id").ToArg(recurring.CategoryID),
		um.SetCol("account_id").ToArg(recurring.AccountID),
		um.SetCol("frequency").ToArg(string(recurring.Frequency)),
		um.SetCol("start_date").ToArg(recurring.StartDate),
		um.SetCol("end_date").ToArg(recurring.EndDate),
		um.SetCol("next_due_date").ToArg(recurring.NextDueDate),
		um.SetCol("is_active").ToArg(recurring.IsActive),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(recurring.ID))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// SoftDelete marks a recurring definition deleted without removing the row.
func (w *Writer) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table("recurring_transactions"),
		um.SetCol("deleted_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}
