package repositories

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// DistributionReader defines read operations for distribution data.
// Returned distributions carry their buckets in sort order.
type DistributionReader interface {
	// FindActiveDistribution returns the default distribution, else the most recently created one.
	FindActiveDistribution(ctx context.Context, orgID string) (*domain.Distribution, error)

	// FindDistributionByID retrieves a distribution of the organization.
	FindDistributionByID(ctx context.Context, orgID, distributionID string) (*domain.Distribution, error)

	// ListDistributions lists the organization's distributions, newest first.
	ListDistributions(ctx context.Context, orgID string) ([]domain.Distribution, error)
}

// DistributionWriter defines write operations for distribution data
type DistributionWriter interface {
	// SaveDistribution persists a new distribution and its buckets.
	SaveDistribution(ctx context.Context, distribution domain.Distribution) error

	// ReplaceBuckets deletes stored buckets missing from the incoming set and upserts the rest atomically.
	ReplaceBuckets(ctx context.Context, distributionID string, buckets []domain.Bucket) error

	// SetDefault marks one distribution as default and clears the flag on the others.
	SetDefault(ctx context.Context, orgID, distributionID, userID string) error

	// UpdateSettings stores name, edit mode and base income settings.
	UpdateSettings(ctx context.Context, distribution domain.Distribution) error
}

// DistributionRepositoryFacade combines all distribution-related repository interfaces
type DistributionRepositoryFacade interface {
	DistributionReader
	DistributionWriter
}
