package services

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// InvoiceSvc computes credit-card statements.
type InvoiceSvc interface {
	// GetInvoiceData computes the statement of the target month. Zero year/month mean the current month.
	GetInvoiceData(ctx context.Context, scope domain.Scope, accountID string, year, month int) (*domain.InvoiceData, error)

	// GetAvailableInvoices lists statement months newest first.
	GetAvailableInvoices(ctx context.Context, scope domain.Scope, accountID string) ([]domain.InvoiceRef, error)
}
