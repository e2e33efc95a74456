package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/moedinha/moedinha_backend/internal/utils/allocation"
	"github.com/shopspring/decimal"
)

// distributionService implements the DistributionSvcFacade interface
type distributionService struct {
	BaseService
	distributionRepo portsrepo.DistributionRepositoryFacade
}

// NewDistributionService creates a new distribution service with the provided dependencies
func NewDistributionService(distributionRepo portsrepo.DistributionRepositoryFacade) portssvc.DistributionSvcFacade {
	return &distributionService{distributionRepo: distributionRepo}
}

var _ portssvc.DistributionSvcFacade = (*distributionService)(nil)

func (s *distributionService) GetActiveDistribution(ctx context.Context, scope domain.Scope) (*domain.Distribution, error) {
	return s.distributionRepo.FindActiveDistribution(ctx, scope.OrgID)
}

func (s *distributionService) ListDistributions(ctx context.Context, scope domain.Scope) ([]domain.Distribution, error) {
	dists, err := s.distributionRepo.ListDistributions(ctx, scope.OrgID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list distributions", orgAttr(scope))
		return nil, err
	}
	if dists == nil {
		return []domain.Distribution{}, nil
	}
	return dists, nil
}

func (s *distributionService) CreateDistribution(ctx context.Context, scope domain.Scope, req dto.CreateDistributionRequest) (*domain.Distribution, error) {
	dist := domain.Distribution{
		DistributionID: uuid.NewString(),
		OrgID:          scope.OrgID,
		Name:           strings.TrimSpace(req.Name),
		IsDefault:      req.IsDefault,
		EditMode:       req.EditMode,
		BaseIncomeMode: req.BaseIncomeMode,
		PlannedIncome:  req.PlannedIncome,
		AuditFields: domain.AuditFields{
			CreatedAt:     scope.Now,
			CreatedBy:     scope.UserID,
			LastUpdatedAt: scope.Now,
			LastUpdatedBy: scope.UserID,
		},
	}
	if dist.Name == "" {
		return nil, apperrors.NewValidationFailedError("distribution name is required")
	}
	if dist.EditMode == "" {
		dist.EditMode = domain.EditModeAuto
	}
	if dist.BaseIncomeMode == "" {
		dist.BaseIncomeMode = domain.IncomeCurrentMonth
	}
	if err := validateIncomeSettings(dist.BaseIncomeMode, dist.PlannedIncome); err != nil {
		return nil, err
	}

	dist.Buckets = toBuckets(dist.DistributionID, req.Buckets)
	if err := allocation.Validate(dist.Buckets); err != nil {
		return nil, err
	}
	for i := range dist.Buckets {
		dist.Buckets[i].BucketID = uuid.NewString()
	}

	// The first distribution of an organization becomes its default.
	if !dist.IsDefault {
		existing, err := s.distributionRepo.ListDistributions(ctx, scope.OrgID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list distributions", orgAttr(scope))
			return nil, err
		}
		dist.IsDefault = len(existing) == 0
	}

	if err := s.distributionRepo.SaveDistribution(ctx, dist); err != nil {
		s.LogError(ctx, err, "Failed to save distribution", orgAttr(scope))
		return nil, err
	}
	s.LogInfo(ctx, "Distribution created", orgAttr(scope),
		slog.String("distribution_id", dist.DistributionID),
		slog.Int("buckets", len(dist.Buckets)))
	return &dist, nil
}

func (s *distributionService) SaveBuckets(ctx context.Context, scope domain.Scope, distributionID string, req dto.SaveBucketsRequest) (*domain.Distribution, error) {
	dist, err := s.distributionRepo.FindDistributionByID(ctx, scope.OrgID, distributionID)
	if err != nil {
		return nil, err
	}

	buckets := toBuckets(distributionID, req.Buckets)
	if err := allocation.Validate(buckets); err != nil {
		s.LogWarn(ctx, "Rejected bucket set", orgAttr(scope),
			slog.String("distribution_id", distributionID),
			slog.Int("sum_bps", allocation.Sum(buckets)))
		return nil, err
	}

	known := make(map[string]struct{}, len(dist.Buckets))
	for _, b := range dist.Buckets {
		known[b.BucketID] = struct{}{}
	}
	for i := range buckets {
		if buckets[i].BucketID == "" {
			buckets[i].BucketID = uuid.NewString()
			continue
		}
		if _, ok := known[buckets[i].BucketID]; !ok {
			return nil, apperrors.NewValidationFailedError(
				fmt.Sprintf("bucket %s does not belong to this distribution", buckets[i].BucketID))
		}
	}

	if err := s.distributionRepo.ReplaceBuckets(ctx, distributionID, buckets); err != nil {
		s.LogError(ctx, err, "Failed to save buckets", orgAttr(scope), slog.String("distribution_id", distributionID))
		return nil, err
	}
	dist.Buckets = buckets
	return dist, nil
}

func (s *distributionService) SetDefault(ctx context.Context, scope domain.Scope, distributionID string) error {
	if _, err := s.distributionRepo.FindDistributionByID(ctx, scope.OrgID, distributionID); err != nil {
		return err
	}
	if err := s.distributionRepo.SetDefault(ctx, scope.OrgID, distributionID, scope.UserID); err != nil {
		s.LogError(ctx, err, "Failed to set default distribution", orgAttr(scope), slog.String("distribution_id", distributionID))
		return err
	}
	return nil
}

func (s *distributionService) UpdateSettings(ctx context.Context, scope domain.Scope, distributionID string, req dto.UpdateDistributionSettingsRequest) (*domain.Distribution, error) {
	dist, err := s.distributionRepo.FindDistributionByID(ctx, scope.OrgID, distributionID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("distribution name is required")
		}
		dist.Name = name
	}
	if req.EditMode != nil {
		dist.EditMode = *req.EditMode
	}
	if req.BaseIncomeMode != nil {
		dist.BaseIncomeMode = *req.BaseIncomeMode
	}
	if req.PlannedIncome != nil {
		dist.PlannedIncome = req.PlannedIncome
	}
	if err := validateIncomeSettings(dist.BaseIncomeMode, dist.PlannedIncome); err != nil {
		return nil, err
	}
	dist.LastUpdatedAt = scope.Now
	dist.LastUpdatedBy = scope.UserID

	if err := s.distributionRepo.UpdateSettings(ctx, *dist); err != nil {
		s.LogError(ctx, err, "Failed to update distribution settings", orgAttr(scope), slog.String("distribution_id", distributionID))
		return nil, err
	}
	return dist, nil
}

func (s *distributionService) PreviewAutoBalance(ctx context.Context, req dto.AutoBalanceRequest) ([]domain.Bucket, error) {
	buckets := toBuckets("", req.Buckets)
	found := false
	for _, b := range buckets {
		if b.BucketID == req.EditedBucketID {
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NewValidationFailedError("edited bucket is not part of the set")
	}
	if req.NewValue < 0 || req.NewValue > domain.TotalBps {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("new value must be between 0 and %d bps", domain.TotalBps))
	}
	return allocation.AutoBalance(buckets, req.EditedBucketID, req.NewValue, req.Strategy), nil
}

func validateIncomeSettings(mode domain.BaseIncomeMode, planned *decimal.Decimal) error {
	if !mode.Valid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unsupported base income mode %q", mode))
	}
	if planned != nil && planned.IsNegative() {
		return apperrors.NewValidationFailedError("planned income must not be negative")
	}
	return nil
}

func toBuckets(distributionID string, reqs []dto.BucketRequest) []domain.Bucket {
	buckets := make([]domain.Bucket, len(reqs))
	for i, r := range reqs {
		buckets[i] = r.ToDomain(distributionID)
	}
	return buckets
}
