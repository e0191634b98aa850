package transaction

import (
	"time"

	"github.com/hoaikthai/fin-api/internal/service"
	storagetx "github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                     string `json:"id" doc:"Transaction UUID"`
	Type                   string `json:"type" doc:"Transaction type: income or expense"`
	Amount                 string `json:"amount" doc:"Signed decimal amount"`
	Description            string `json:"description" doc:"Description"`
	CategoryID             string `json:"categoryID" doc:"Category UUID"`
	AccountID              string `json:"accountID" doc:"Account UUID"`
	TransactionDate        string `json:"transactionDate" doc:"RFC3339 transaction date"`
	RelatedTransactionID   string `json:"relatedTransactionID,omitempty" doc:"Other leg of a transfer, when set"`
	RecurringTransactionID string `json:"recurringTransactionID,omitempty" doc:"Generating recurring definition, when set"`
	CreatedAt              string `json:"createdAt" doc:"RFC3339 creation time"`

	Account  *TransactionAccount  `json:"account,omitempty" doc:"Owning account, present on list responses"`
	Category *TransactionCategory `json:"category,omitempty" doc:"Category, present on list responses"`
}

// TransactionAccount is the account summary embedded in list responses.
type TransactionAccount struct {
	ID       string `json:"id" doc:"Account UUID"`
	Name     string `json:"name" doc:"Account name"`
	Currency string `json:"currency" doc:"ISO 4217 currency code"`
}

// TransactionCategory is the category summary embedded in list responses.
type TransactionCategory struct {
	ID   string `json:"id" doc:"Category UUID"`
	Name string `json:"name" doc:"Category name"`
	Type string `json:"type" doc:"Category type: income or expense"`
}

func ToAPITransaction(tx *storagetx.Transaction) Transaction {
	out := Transaction{
		ID:              tx.ID.String(),
		Type:            string(tx.Type),
		Amount:          tx.Amount.String(),
		Description:     tx.Description,
		CategoryID:      tx.CategoryID.String(),
		AccountID:       tx.AccountID.String(),
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.RelatedTransactionID != nil {
		out.RelatedTransactionID = tx.RelatedTransactionID.String()
	}
	if tx.RecurringTransactionID != nil {
		out.RecurringTransactionID = tx.RecurringTransactionID.String()
	}
	return out
}

// ToAPITransactionDetails converts a joined list result for API responses.
func ToAPITransactionDetails(details []*service.TransactionDetails) []Transaction {
	out := make([]Transaction, len(details))
	for i, d := range details {
		out[i] = ToAPITransaction(d.Transaction)
		if d.Account != nil {
			out[i].Account = &TransactionAccount{
				ID:       d.Account.ID.String(),
				Name:     d.Account.Name,
				Currency: d.Account.Currency,
			}
		}
		if d.Category != nil {
			out[i].Category = &TransactionCategory{
				ID:   d.Category.ID.String(),
				Name: d.Category.Name,
				Type: string(d.Category.Type),
			}
		}
	}
	return out
}
