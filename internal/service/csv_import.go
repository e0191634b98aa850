package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hoaikthai/fin-api/internal/apperr"
	"github.com/hoaikthai/fin-api/internal/operator/actions"
	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
)

// csvRow is one line of an import file. Columns may appear in any order;
// Id and Note are optional.
type csvRow struct {
	ID       string `csv:"Id"`
	Date     string `csv:"Date"`
	Category string `csv:"Category"`
	Amount   string `csv:"Amount"`
	Currency string `csv:"Currency"`
	Note     string `csv:"Note"`
	Wallet   string `csv:"Wallet"`
}

var requiredCSVColumns = []string{"Date", "Category", "Amount", "Currency", "Wallet"}

// amountCleanPattern strips currency symbols and thousands separators, so
// "$-25.50" parses as -25.50. The sign and decimal point survive.
var amountCleanPattern = regexp.MustCompile(`[^0-9.\-]`)

const importedDescription = "Imported transaction"

var csvDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ImportResult reports a CSV import outcome. Imported is zero whenever
// Errors is non-empty.
type ImportResult struct {
	Imported int
	Errors   []string
}

// ImportFromCSV imports a transaction file for the user. Structural
// problems (empty file, missing columns, unknown wallets or categories)
// abort the import with an error. Row-level problems are collected into the
// result and nothing is imported; only a file with zero row errors commits,
// and it commits every row in one storage transaction.
func (s *TransactionService) ImportFromCSV(ctx context.Context, userID uuid.UUID, data []byte) (*ImportResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperr.InvalidInput("CSV file is empty")
	}

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, apperr.InvalidInput("unable to parse CSV file: %v", err)
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, apperr.InvalidInput("CSV file is missing required columns: %s", strings.Join(missing, ", "))
	}

	var rows []*csvRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, apperr.InvalidInput("unable to parse CSV file: %v", err)
	}
	if len(rows) == 0 {
		return nil, apperr.InvalidInput("CSV file is empty")
	}

	accountsByName, err := s.accountsByName(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoriesByName, err := s.categoriesByName(ctx, userID)
	if err != nil {
		return nil, err
	}

	if unknown := unknownNames(rows, func(r *csvRow) string { return r.Wallet }, func(name string) bool {
		_, ok := accountsByName[name]
		return ok
	}); len(unknown) > 0 {
		return nil, apperr.InvalidInput("CSV file references unknown accounts: %s", strings.Join(unknown, ", "))
	}
	if unknown := unknownNames(rows, func(r *csvRow) string { return r.Category }, func(name string) bool {
		_, ok := categoriesByName[name]
		return ok
	}); len(unknown) > 0 {
		return nil, apperr.InvalidInput("CSV file references unknown categories: %s", strings.Join(unknown, ", "))
	}

	inputs := make([]actions.TransactionInput, 0, len(rows))
	var rowErrors []string
	for i, row := range rows {
		// The header is row 1.
		rowNum := i + 2
		input, errs := validateRow(row, rowNum, accountsByName, categoriesByName)
		if len(errs) > 0 {
			rowErrors = append(rowErrors, errs...)
			continue
		}
		inputs = append(inputs, *input)
	}

	if len(rowErrors) > 0 {
		return &ImportResult{Imported: 0, Errors: rowErrors}, nil
	}

	action := &actions.ImportTransactions{Rows: inputs, UserID: userID}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return &ImportResult{Imported: action.Imported}, nil
}

func validateRow(row *csvRow, rowNum int, accountsByName map[string]*account.Account, categoriesByName map[string]*category.Category) (*actions.TransactionInput, []string) {
	var errs []string

	if strings.TrimSpace(row.Wallet) == "" {
		errs = append(errs, fmt.Sprintf("Row %d: wallet is required", rowNum))
	}
	if strings.TrimSpace(row.Category) == "" {
		errs = append(errs, fmt.Sprintf("Row %d: category is required", rowNum))
	}

	date, err := parseCSVDate(row.Date)
	if err != nil {
		errs = append(errs, fmt.Sprintf("Row %d: invalid date %q", rowNum, row.Date))
	}

	cleaned := amountCleanPattern.ReplaceAllString(row.Amount, "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		errs = append(errs, fmt.Sprintf("Row %d: amount %q is not numeric", rowNum, row.Amount))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	acct := accountsByName[strings.TrimSpace(row.Wallet)]
	cat := categoriesByName[strings.TrimSpace(row.Category)]

	if !strings.EqualFold(acct.Currency, row.Currency) {
		errs = append(errs, fmt.Sprintf("Row %d: currency %s does not match account currency %s", rowNum, row.Currency, acct.Currency))
	}
	if cat.Type == category.TypeIncome && amount.Sign() <= 0 {
		errs = append(errs, fmt.Sprintf("Row %d: amount must be positive for income category %s", rowNum, cat.Name))
	}
	if cat.Type == category.TypeExpense && amount.Sign() >= 0 {
		errs = append(errs, fmt.Sprintf("Row %d: amount must be negative for expense category %s", rowNum, cat.Name))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	description := strings.TrimSpace(row.Note)
	if description == "" {
		description = importedDescription
	}

	return &actions.TransactionInput{
		Type:            cat.Type,
		Amount:          amount,
		Description:     description,
		CategoryID:      cat.ID,
		AccountID:       acct.ID,
		TransactionDate: date,
	}, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[strings.TrimSpace(name)] = true
	}
	var missing []string
	for _, name := range requiredCSVColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

func unknownNames(rows []*csvRow, pick func(*csvRow) string, known func(string) bool) []string {
	seen := make(map[string]bool)
	var unknown []string
	for _, row := range rows {
		name := strings.TrimSpace(pick(row))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		if !known(name) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func parseCSVDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range csvDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (s *TransactionService) accountsByName(ctx context.Context, userID uuid.UUID) (map[string]*account.Account, error) {
	accounts, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*account.Account, len(accounts))
	for _, acct := range accounts {
		byName[acct.Name] = acct
	}
	return byName, nil
}

func (s *TransactionService) categoriesByName(ctx context.Context, userID uuid.UUID) (map[string]*category.Category, error) {
	categories, err := s.categories.ListVisibleTo(ctx, userID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*category.Category, len(categories))
	for _, cat := range categories {
		byName[cat.Name] = cat
	}
	return byName, nil
}
