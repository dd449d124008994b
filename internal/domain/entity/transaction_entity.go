package entity

import "time"

// TransactionType is either income or expense.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single financial record. Amount is non-negative;
// the type carries the sign.
type Transaction struct {
	ID       string
	UserID   string
	Type     TransactionType
	Amount   float64
	Category string
	Date     time.Time
}
