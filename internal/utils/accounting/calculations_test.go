package accounting

import (
	"testing"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func txn(kind domain.TransactionType, amount int64, date time.Time, bucket *string) domain.Transaction {
	return domain.Transaction{Type: kind, Amount: decimal.NewFromInt(amount), Date: date, BucketID: bucket}
}

func TestSignedTotal(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	deleted := day
	deletedTxn := txn(domain.TransactionExpense, 999, day, nil)
	deletedTxn.DeletedAt = &deleted

	total := SignedTotal([]domain.Transaction{
		txn(domain.TransactionExpense, 150, day, nil),
		txn(domain.TransactionIncome, 50, day, nil),
		txn(domain.TransactionTransfer, 300, day, nil),
		deletedTxn,
	})
	assert.True(t, total.Equal(decimal.NewFromInt(-100)), total.String())
}

func TestSpendByBucket(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	spend := SpendByBucket([]domain.Transaction{
		txn(domain.TransactionExpense, 100, day, strPtr("needs")),
		txn(domain.TransactionExpense, 50, day, strPtr("needs")),
		txn(domain.TransactionExpense, 20, day, nil),
		txn(domain.TransactionTransfer, 500, day, strPtr("needs")),
		txn(domain.TransactionIncome, 1000, day, strPtr("wants")),
	})
	assert.True(t, spend["needs"].Equal(decimal.NewFromInt(150)))
	assert.True(t, spend[""].Equal(decimal.NewFromInt(20)))
	_, ok := spend["wants"]
	assert.False(t, ok)
}

func TestAverageIncome_DistinctMonths(t *testing.T) {
	// Three-month window where February had no income: the denominator is 2.
	byMonth := IncomeByMonth([]domain.Transaction{
		txn(domain.TransactionIncome, 3000, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), nil),
		txn(domain.TransactionIncome, 1000, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), nil),
		txn(domain.TransactionIncome, 2000, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), nil),
		txn(domain.TransactionExpense, 800, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), nil),
	})
	assert.Len(t, byMonth, 2)
	assert.True(t, AverageIncome(byMonth).Equal(decimal.NewFromInt(3000)))
	assert.True(t, AverageIncome(nil).IsZero())
}

func TestPendingStats(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	stats := PendingStats([]domain.Transaction{
		txn(domain.TransactionExpense, 10, day, nil),
		txn(domain.TransactionExpense, 10, day, strPtr("")),
		txn(domain.TransactionExpense, 10, day, strPtr("needs")),
		txn(domain.TransactionExpense, 10, day, strPtr("needs")),
		txn(domain.TransactionIncome, 10, day, nil),
	})
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 50.0, stats.Pct, 1e-9)

	assert.Equal(t, domain.PendingStats{}, PendingStats(nil))
}
