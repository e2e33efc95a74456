package repositories

import (
	"context"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// TransactionFilter narrows a transaction range query. From and To are
// inclusive calendar dates. Soft-deleted rows are always excluded.
type TransactionFilter struct {
	OrgID     string
	From      time.Time
	To        time.Time
	AccountID *string
	Types     []domain.TransactionType
}

// TransactionReader defines read operations over the transaction ledger
type TransactionReader interface {
	// ListTransactions returns the transactions matching the filter ordered by date.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionMonths returns the distinct (year, month) pairs present for an account.
	ListTransactionMonths(ctx context.Context, orgID, accountID string) ([]domain.InvoiceRef, error)
}
