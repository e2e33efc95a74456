package accounting

import (
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedTotal sums the signed amounts of the transactions: income adds,
// expense subtracts, transfers are ignored. Soft-deleted rows are skipped.
func SignedTotal(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.DeletedAt != nil {
			continue
		}
		total = total.Add(txn.SignedAmount())
	}
	return total
}

// SpendByBucket sums the absolute amounts of non-deleted expenses per bucket.
// Expenses without a bucket are collected under the empty key.
func SpendByBucket(txns []domain.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.DeletedAt != nil || txn.Type != domain.TransactionExpense {
			continue
		}
		key := ""
		if txn.BucketID != nil {
			key = *txn.BucketID
		}
		out[key] = out[key].Add(txn.Amount.Abs())
	}
	return out
}

// IncomeByMonth groups non-deleted income by the first day of its month.
// Months without income are absent from the result.
func IncomeByMonth(txns []domain.Transaction) map[time.Time]decimal.Decimal {
	out := make(map[time.Time]decimal.Decimal)
	for _, txn := range txns {
		if txn.DeletedAt != nil || txn.Type != domain.TransactionIncome {
			continue
		}
		month := time.Date(txn.Date.Year(), txn.Date.Month(), 1, 0, 0, 0, 0, txn.Date.Location())
		out[month] = out[month].Add(txn.Amount.Abs())
	}
	return out
}

// AverageIncome divides total income by the number of months that had any.
func AverageIncome(byMonth map[time.Time]decimal.Decimal) decimal.Decimal {
	if len(byMonth) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, v := range byMonth {
		total = total.Add(v)
	}
	return total.Div(decimal.NewFromInt(int64(len(byMonth))))
}

// PendingStats counts non-deleted expenses without a bucket and their share
// of the month's expense count, in percent.
func PendingStats(txns []domain.Transaction) domain.PendingStats {
	expenses, pending := 0, 0
	for _, txn := range txns {
		if txn.DeletedAt != nil || txn.Type != domain.TransactionExpense {
			continue
		}
		expenses++
		if txn.BucketID == nil || *txn.BucketID == "" {
			pending++
		}
	}
	stats := domain.PendingStats{Count: pending}
	if expenses > 0 {
		stats.Pct = float64(pending) / float64(expenses) * 100
	}
	return stats
}
