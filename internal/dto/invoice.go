package dto

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceQuery selects a statement month. Zero values mean the current one.
type InvoiceQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// InvoiceTransactionResponse is a transaction listed on a statement.
type InvoiceTransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Description   string                   `json:"description"`
	Amount        decimal.Decimal          `json:"amount"`
	Type          domain.TransactionType   `json:"type"`
	Status        domain.TransactionStatus `json:"status"`
	Date          string                   `json:"date"`
}

// InvoiceResponse defines data returned for a statement.
type InvoiceResponse struct {
	AccountID    string                       `json:"accountID"`
	Year         int                          `json:"year"`
	Month        int                          `json:"month"`
	PeriodStart  string                       `json:"periodStart"`
	PeriodEnd    string                       `json:"periodEnd"`
	ClosingDate  string                       `json:"closingDate"`
	DueDate      string                       `json:"dueDate"`
	Total        decimal.Decimal              `json:"total"`
	Status       domain.InvoiceStatus         `json:"status"`
	Transactions []InvoiceTransactionResponse `json:"transactions"`
}

// AvailableInvoicesResponse lists statement months, newest first.
type AvailableInvoicesResponse struct {
	Invoices []domain.InvoiceRef `json:"invoices"`
}

// ToInvoiceResponse converts domain.InvoiceData to DTO.
func ToInvoiceResponse(inv *domain.InvoiceData) InvoiceResponse {
	txns := make([]InvoiceTransactionResponse, len(inv.Transactions))
	for i, t := range inv.Transactions {
		txns[i] = InvoiceTransactionResponse{
			TransactionID: t.TransactionID,
			Description:   t.Description,
			Amount:        t.Amount,
			Type:          t.Type,
			Status:        t.Status,
			Date:          t.Date.Format("2006-01-02"),
		}
	}
	return InvoiceResponse{
		AccountID:    inv.AccountID,
		Year:         inv.Year,
		Month:        inv.Month,
		PeriodStart:  inv.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    inv.PeriodEnd.Format("2006-01-02"),
		ClosingDate:  inv.ClosingDate.Format("2006-01-02"),
		DueDate:      inv.DueDate.Format("2006-01-02"),
		Total:        inv.Total,
		Status:       inv.Status,
		Transactions: txns,
	}
}
