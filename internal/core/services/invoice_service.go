package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/utils/accounting"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
)

// invoiceService implements the InvoiceSvc interface
type invoiceService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
}

// NewInvoiceService creates a new invoice service with the provided dependencies
func NewInvoiceService(accountRepo portsrepo.AccountReader, transactionRepo portsrepo.TransactionReader) portssvc.InvoiceSvc {
	return &invoiceService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.InvoiceSvc = (*invoiceService)(nil)

// invoicePeriod holds the dates of one statement.
type invoicePeriod struct {
	start   time.Time
	end     time.Time
	closing time.Time
	due     time.Time
}

// periodFor computes the statement of (year, month). The period runs from the
// previous month's closing day through the day before this month's closing
// day. A due day earlier than the closing day falls in the following month.
// Days beyond the end of a month overflow into the next one.
func periodFor(year int, month time.Month, closingDay, dueDay int, loc *time.Location) invoicePeriod {
	closing := dates.Date(year, month, closingDay, loc)
	due := dates.Date(year, month, dueDay, loc)
	if dueDay < closingDay {
		due = dates.Date(year, month+1, dueDay, loc)
	}
	return invoicePeriod{
		start:   dates.Date(year, month-1, closingDay, loc),
		end:     closing.AddDate(0, 0, -1),
		closing: closing,
		due:     due,
	}
}

func (s *invoiceService) GetInvoiceData(ctx context.Context, scope domain.Scope, accountID string, year, month int) (*domain.InvoiceData, error) {
	account, err := s.cardAccount(ctx, scope, accountID)
	if err != nil {
		return nil, err
	}
	today := scope.Today()
	if year == 0 || month == 0 {
		year, month = today.Year(), int(today.Month())
	}
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid month %d", month))
	}

	p := periodFor(year, time.Month(month), *account.ClosingDay, *account.DueDay, scope.Location())
	txns, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		OrgID:     scope.OrgID,
		From:      p.start,
		To:        p.end,
		AccountID: &account.AccountID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice transactions", orgAttr(scope), slog.String("account_id", accountID))
		return nil, fmt.Errorf("listing invoice transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	total := accounting.SignedTotal(txns)
	return &domain.InvoiceData{
		AccountID:    account.AccountID,
		Year:         year,
		Month:        month,
		PeriodStart:  p.start,
		PeriodEnd:    p.end,
		ClosingDate:  p.closing,
		DueDate:      p.due,
		Total:        total,
		Status:       invoiceStatus(today, p, total.IsNegative()),
		Transactions: txns,
	}, nil
}

// invoiceStatus compares calendar days: the statement is open before its
// closing date and overdue after its due date while it still carries debt.
func invoiceStatus(today time.Time, p invoicePeriod, inDebt bool) domain.InvoiceStatus {
	switch {
	case today.Before(p.closing):
		return domain.InvoiceOpen
	case today.After(p.due) && inDebt:
		return domain.InvoiceOverdue
	default:
		return domain.InvoiceClosed
	}
}

func (s *invoiceService) GetAvailableInvoices(ctx context.Context, scope domain.Scope, accountID string) ([]domain.InvoiceRef, error) {
	if _, err := s.cardAccount(ctx, scope, accountID); err != nil {
		return nil, err
	}
	months, err := s.transactionRepo.ListTransactionMonths(ctx, scope.OrgID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice months", orgAttr(scope), slog.String("account_id", accountID))
		return nil, fmt.Errorf("listing invoice months: %w", err)
	}

	current := dates.MonthStart(scope.Today())
	next := dates.AddMonths(current, 1)
	seen := make(map[domain.InvoiceRef]struct{}, len(months)+2)
	refs := make([]domain.InvoiceRef, 0, len(months)+2)
	candidates := append([]domain.InvoiceRef{
		{Year: current.Year(), Month: int(current.Month())},
		{Year: next.Year(), Month: int(next.Month())},
	}, months...)
	for _, ref := range candidates {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
	return refs, nil
}

// cardAccount loads the account and checks it has a statement cycle.
func (s *invoiceService) cardAccount(ctx context.Context, scope domain.Scope, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, scope.OrgID, accountID)
	if err != nil {
		return nil, err
	}
	if !account.HasInvoiceCycle() {
		return nil, apperrors.NewValidationFailedError("account has no closing/due day configured")
	}
	return account, nil
}
