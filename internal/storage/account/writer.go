package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
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

// Insert creates a new account and returns the stored row.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	q := psql.Insert(
		im.Into("accounts", "name", "currency", "balance", "description", "user_id"),
		im.Values(psql.Arg(create.Name, create.Currency, create.Balance, create.Description, create.UserID)),
		im.Returning(toAnySlice(columns)...),
	)
	row, err := bob.One(ctx, w.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update persists the mutable fields of an existing account.
func (w *Writer) Update(ctx context.Context, account *Account) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("name").ToArg(account.Name),
		um.SetCol("currency").ToArg(account.Currency),
		um.SetCol("balance").ToArg(account.Balance),
		um.SetCol("description").ToArg(account.Description),
		um.SetCol("is_active").ToArg(account.IsActive),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(account.ID))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// UpdateBalance sets the cached balance on an account.
func (w *Writer) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}

// SoftDelete marks an account deleted without removing the row.
func (w *Writer) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("deleted_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
	)
	_, err := bob.Exec(ctx, w.exec, q)
	return err
}
