package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of a credit-card statement.
type InvoiceStatus string

const (
	InvoiceOpen    InvoiceStatus = "open"
	InvoiceClosed  InvoiceStatus = "closed"
	InvoiceOverdue InvoiceStatus = "overdue"
	// InvoicePaid needs reconciliation against payments and is never computed.
	InvoicePaid InvoiceStatus = "paid"
)

// InvoiceData describes one statement of a credit-card account.
type InvoiceData struct {
	AccountID    string          `json:"accountID"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	PeriodStart  time.Time       `json:"periodStart"`
	PeriodEnd    time.Time       `json:"periodEnd"`
	ClosingDate  time.Time       `json:"closingDate"`
	DueDate      time.Time       `json:"dueDate"`
	Total        decimal.Decimal `json:"total"` // Signed; negative means debt
	Status       InvoiceStatus   `json:"status"`
	Transactions []Transaction   `json:"transactions"`
}

// InvoiceRef identifies a statement by calendar month.
type InvoiceRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Less orders refs descending by (year, month).
func (r InvoiceRef) Less(o InvoiceRef) bool {
	if r.Year != o.Year {
		return r.Year > o.Year
	}
	return r.Month > o.Month
}
