package services

import (
	"context"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/dto"
)

// DistributionReaderSvc defines read operations for distributions
type DistributionReaderSvc interface {
	GetActiveDistribution(ctx context.Context, scope domain.Scope) (*domain.Distribution, error)
	ListDistributions(ctx context.Context, scope domain.Scope) ([]domain.Distribution, error)
}

// DistributionWriterSvc defines write operations for distributions
type DistributionWriterSvc interface {
	CreateDistribution(ctx context.Context, scope domain.Scope, req dto.CreateDistributionRequest) (*domain.Distribution, error)

	// SaveBuckets validates the incoming set (2..8 buckets summing to 10000 bps) before any write.
	SaveBuckets(ctx context.Context, scope domain.Scope, distributionID string, req dto.SaveBucketsRequest) (*domain.Distribution, error)

	SetDefault(ctx context.Context, scope domain.Scope, distributionID string) error
	UpdateSettings(ctx context.Context, scope domain.Scope, distributionID string, req dto.UpdateDistributionSettingsRequest) (*domain.Distribution, error)
}

// DistributionBalancerSvc previews rebalancing without persisting anything.
type DistributionBalancerSvc interface {
	PreviewAutoBalance(ctx context.Context, req dto.AutoBalanceRequest) ([]domain.Bucket, error)
}

// DistributionSvcFacade combines all distribution-related service interfaces
type DistributionSvcFacade interface {
	DistributionReaderSvc
	DistributionWriterSvc
	DistributionBalancerSvc
}
