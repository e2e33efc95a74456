package services

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// OrgResolverSvc resolves the organization a request acts on.
type OrgResolverSvc interface {
	// ResolveActiveOrg returns the user's active organization id (first membership by join date),
	// or apperrors.ErrNoOrganization.
	ResolveActiveOrg(ctx context.Context, userID string) (string, error)
}

// OrgWriterSvc defines write operations for organizations
type OrgWriterSvc interface {
	// CreateOrg creates an organization owned by the user.
	CreateOrg(ctx context.Context, userID, name string) (*domain.Org, error)
}

// OrgSvcFacade combines all organization-related service interfaces
type OrgSvcFacade interface {
	OrgResolverSvc
	OrgWriterSvc
}
