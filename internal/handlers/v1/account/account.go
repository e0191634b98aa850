package account

import (
	"time"

	storageacct "github.com/hoaikthai/fin-api/internal/storage/account"
)

// Account is the API response model for an account.
type Account struct {
	ID          string `json:"id" doc:"Account UUID"`
	Name        string `json:"name" doc:"Account name"`
	Currency    string `json:"currency" doc:"ISO 4217 currency code"`
	Balance     string `json:"balance" doc:"Decimal balance"`
	Description string `json:"description" doc:"Description"`
	IsActive    bool   `json:"isActive" doc:"Whether the account is active"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toAPIAccount(acct *storageacct.Account) Account {
	return Account{
		ID:          acct.ID.String(),
		Name:        acct.Name,
		Currency:    acct.Currency,
		Balance:     acct.Balance.String(),
		Description: acct.Description,
		IsActive:    acct.IsActive,
		CreatedAt:   acct.CreatedAt.Format(time.RFC3339),
	}
}
