package repositories

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account of the organization, or apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, orgID, accountID string) (*domain.Account, error)
}
