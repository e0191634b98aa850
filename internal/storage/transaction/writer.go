package transaction

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

// Insert creates a new transaction and returns the stored row.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions",
			"type", "amount", "description", "category_id", "account_id", "user_id",
			"transaction_date", "related_transaction_id", "recurring_transaction_id",
		),
		im.Values(psql.Arg(
			string(create.Type), create.Amount, create.Description, create.CategoryID,
			create.AccountID, create.UserID, create.TransactionDate,
			create.RelatedTransactionID, create.RecurringTransactionID,
		)),
		im.Returning(toAnySlice(columns)...),
	)
	row, err := bob.One(ctx, w.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update persists the mutable fields of an existing transaction.
func (w *Writer) Update(ctx context.Context, transaction *Transaction) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("type").ToArg(string(transaction.Type)),
		um.SetCol("amount").ToArg(transaction.Amount),
		um.SetCol("description").ToArg(transaction.Description),
		um.SetCol("category_id").ToArg(transaction.CategoryID),
		um.SetCol("account_id").ToArg(transaction.AccountID),
		um.SetCol("transaction_date").ToArg(transaction.TransactionDate),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(transaction.ID))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// SetRelated links a transaction to the other leg of its transfer.
func (w *Writer) SetRelated(ctx context.Context, id, relatedID uuid.UUID) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("related_transaction_id").ToArg(relatedID),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// SoftDelete marks a transaction deleted without removing the row.
func (w *Writer) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("deleted_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}
