package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. TxnDate is a DATE column.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	OrgID         string          `db:"org_id"`
	AccountID     string          `db:"account_id"`
	CategoryID    *string         `db:"category_id"`
	BucketID      *string         `db:"bucket_id"`
	Type          string          `db:"type"`
	Status        string          `db:"status"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	TxnDate       time.Time       `db:"txn_date"`
	Metadata      map[string]any  `db:"metadata"` // JSONB
	DeletedAt     *time.Time      `db:"deleted_at"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     *string         `db:"created_by"`
}
