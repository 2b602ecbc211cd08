package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is income or expense.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// BillsCategory is the category assigned to transactions created by bill settlement.
const BillsCategory = "bills"

// Transaction is an immutable income or expense record.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// IsExpense reports whether the transaction counts against the budget.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
