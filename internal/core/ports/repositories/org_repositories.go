package repositories

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// OrgReader defines read operations for organization data
type OrgReader interface {
	// ListMembershipsByUser returns the user's memberships ordered by joined_at, then org_id.
	ListMembershipsByUser(ctx context.Context, userID string) ([]domain.OrgMembership, error)

	// ListOrgIDs returns every organization id, ordered for stable batch runs.
	ListOrgIDs(ctx context.Context) ([]string, error)
}

// OrgWriter defines write operations for organization data
type OrgWriter interface {
	// SaveOrg persists a new organization together with its owner membership.
	SaveOrg(ctx context.Context, org domain.Org, owner domain.OrgMembership) error
}

// OrgRepositoryFacade combines all organization-related repository interfaces
type OrgRepositoryFacade interface {
	OrgReader
	OrgWriter
}
