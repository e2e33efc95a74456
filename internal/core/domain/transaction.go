package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction. Amounts are always
// stored as non-negative magnitudes; the sign is implied by the type.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// TransactionStatus tracks whether a transaction has been settled.
type TransactionStatus string

const (
	TransactionPaid    TransactionStatus = "paid"
	TransactionPending TransactionStatus = "pending"
)

// RecurringWorkerSource marks transactions created by the recurring rule engine.
const RecurringWorkerSource = "recurring_worker"

// Transaction is a single money movement. The core only reads transactions
// and creates new ones from recurring rules.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	OrgID         string            `json:"orgID"`
	AccountID     string            `json:"accountID"`
	CategoryID    *string           `json:"categoryID,omitempty"`
	BucketID      *string           `json:"bucketID,omitempty"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description"`
	Date          time.Time         `json:"date"` // Calendar date, not a timestamp
	Metadata      map[string]any    `json:"metadata,omitempty"`
	DeletedAt     *time.Time        `json:"deletedAt,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     *string           `json:"createdBy,omitempty"`
}

// SignedAmount returns the amount with the sign implied by the type.
// Transfers do not move money in or out of the organization and yield zero.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Type {
	case TransactionIncome:
		return t.Amount.Abs()
	case TransactionExpense:
		return t.Amount.Abs().Neg()
	default:
		return decimal.Zero
	}
}

// PendingStats summarises the month's expenses not yet assigned to a bucket.
type PendingStats struct {
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}
