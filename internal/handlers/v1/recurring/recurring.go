package recurring

import (
	"time"

	storagerec "github.com/hoaikthai/fin-api/internal/storage/recurring"
)

// RecurringTransaction is the API response model for a recurring definition.
type RecurringTransaction struct {
	ID          string `json:"id" doc:"Recurring transaction UUID"`
	Type        string `json:"type" doc:"Transaction type: income or expense"`
	Amount      string `json:"amount" doc:"Signed decimal amount"`
	Description string `json:"description" doc:"Description"`
	CategoryID  string `json:"categoryID" doc:"Category UUID"`
	AccountID   string `json:"accountID" doc:"Account UUID"`
	Frequency   string `json:"frequency" doc:"Recurrence: daily, weekly, monthly, or yearly"`
	StartDate   string `json:"startDate" doc:"RFC3339 start date"`
	EndDate     string `json:"endDate,omitempty" doc:"RFC3339 end date, when set"`
	NextDueDate string `json:"nextDueDate,omitempty" doc:"RFC3339 next materialization date"`
	IsActive    bool   `json:"isActive" doc:"Whether the definition generates transactions"`
}

func toAPIRecurring(def *storagerec.RecurringTransaction) RecurringTransaction {
	out := RecurringTransaction{
		ID:          def.ID.String(),
		Type:        string(def.Type),
		Amount:      def.Amount.String(),
		Description: def.Description,
		CategoryID:  def.CategoryID.String(),
		AccountID:   def.AccountID.String(),
		Frequency:   string(def.Frequency),
		StartDate:   def.StartDate.Format(time.RFC3339),
		IsActive:    def.IsActive,
	}
	if def.EndDate != nil {
		out.EndDate = def.EndDate.Format(time.RFC3339)
	}
	if def.NextDueDate != nil {
		out.NextDueDate = def.NextDueDate.Format(time.RFC3339)
	}
	return out
}
