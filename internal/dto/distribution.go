package dto

import (
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/utils/allocation"
	"github.com/shopspring/decimal"
)

// BucketRequest describes one bucket in a create/save payload.
// An empty BucketID means a new bucket.
type BucketRequest struct {
	BucketID   string `json:"bucketID"`
	Name       string `json:"name" binding:"required,max=60"`
	PercentBps int    `json:"percentBps" binding:"min=0,max=10000"`
	Color      string `json:"color" binding:"max=20"`
	Icon       string `json:"icon" binding:"max=40"`
	SortOrder  int    `json:"sortOrder"`
	IsFlexible bool   `json:"isFlexible"`
}

// ToDomain converts the request into a bucket of the given distribution.
func (b BucketRequest) ToDomain(distributionID string) domain.Bucket {
	return domain.Bucket{
		BucketID:       b.BucketID,
		DistributionID: distributionID,
		Name:           b.Name,
		PercentBps:     b.PercentBps,
		Color:          b.Color,
		Icon:           b.Icon,
		SortOrder:      b.SortOrder,
		IsFlexible:     b.IsFlexible,
	}
}

// CreateDistributionRequest defines data for creating a distribution.
type CreateDistributionRequest struct {
	Name           string                `json:"name" binding:"required,max=80"`
	EditMode       domain.EditMode       `json:"editMode" binding:"omitempty,oneof=auto manual"`
	BaseIncomeMode domain.BaseIncomeMode `json:"baseIncomeMode" binding:"omitempty,oneof=current_month avg_3m avg_6m planned_manual"`
	PlannedIncome  *decimal.Decimal      `json:"plannedIncome"`
	IsDefault      bool                  `json:"isDefault"`
	Buckets        []BucketRequest       `json:"buckets" binding:"required,dive"`
}

// SaveBucketsRequest replaces the bucket set of a distribution.
type SaveBucketsRequest struct {
	Buckets []BucketRequest `json:"buckets" binding:"required,dive"`
}

// UpdateDistributionSettingsRequest updates distribution settings.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateDistributionSettingsRequest struct {
	Name           *string                `json:"name" binding:"omitempty,max=80"`
	EditMode       *domain.EditMode       `json:"editMode" binding:"omitempty,oneof=auto manual"`
	BaseIncomeMode *domain.BaseIncomeMode `json:"baseIncomeMode" binding:"omitempty,oneof=current_month avg_3m avg_6m planned_manual"`
	PlannedIncome  *decimal.Decimal       `json:"plannedIncome"`
}

// AutoBalanceRequest asks for a rebalanced preview after editing one bucket.
type AutoBalanceRequest struct {
	Buckets        []BucketRequest        `json:"buckets" binding:"required,dive"`
	EditedBucketID string                 `json:"editedBucketID" binding:"required"`
	NewValue       int                    `json:"newValue"`
	Strategy       domain.BalanceStrategy `json:"strategy" binding:"required,oneof=flexible proportional"`
}

// BucketResponse defines data returned for a bucket.
type BucketResponse struct {
	BucketID   string  `json:"bucketID"`
	Name       string  `json:"name"`
	PercentBps int     `json:"percentBps"`
	Percent    float64 `json:"percent"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	SortOrder  int     `json:"sortOrder"`
	IsFlexible bool    `json:"isFlexible"`
}

// DistributionResponse defines data returned for a distribution.
type DistributionResponse struct {
	DistributionID string                `json:"distributionID"`
	Name           string                `json:"name"`
	IsDefault      bool                  `json:"isDefault"`
	EditMode       domain.EditMode       `json:"editMode"`
	BaseIncomeMode domain.BaseIncomeMode `json:"baseIncomeMode"`
	PlannedIncome  *decimal.Decimal      `json:"plannedIncome,omitempty"`
	Buckets        []BucketResponse      `json:"buckets"`
	CreatedAt      time.Time             `json:"createdAt"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
}

// AutoBalanceResponse returns the rebalanced preview.
type AutoBalanceResponse struct {
	Buckets []BucketResponse `json:"buckets"`
	Valid   bool             `json:"valid"`
	Delta   int              `json:"delta"`
}

// ToBucketResponses converts buckets to DTOs.
func ToBucketResponses(buckets []domain.Bucket) []BucketResponse {
	res := make([]BucketResponse, len(buckets))
	for i, b := range buckets {
		res[i] = BucketResponse{
			BucketID:   b.BucketID,
			Name:       b.Name,
			PercentBps: b.PercentBps,
			Percent:    allocation.BpsToPercent(b.PercentBps),
			Color:      b.Color,
			Icon:       b.Icon,
			SortOrder:  b.SortOrder,
			IsFlexible: b.IsFlexible,
		}
	}
	return res
}

// ToDistributionResponse converts domain.Distribution to DTO.
func ToDistributionResponse(d *domain.Distribution) DistributionResponse {
	return DistributionResponse{
		DistributionID: d.DistributionID,
		Name:           d.Name,
		IsDefault:      d.IsDefault,
		EditMode:       d.EditMode,
		BaseIncomeMode: d.BaseIncomeMode,
		PlannedIncome:  d.PlannedIncome,
		Buckets:        ToBucketResponses(d.Buckets),
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}

// ToListDistributionResponse converts a slice of distributions.
func ToListDistributionResponse(ds []domain.Distribution) []DistributionResponse {
	res := make([]DistributionResponse, len(ds))
	for i := range ds {
		res[i] = ToDistributionResponse(&ds[i])
	}
	return res
}

// ToAutoBalanceResponse wraps a preview with its sum status.
func ToAutoBalanceResponse(buckets []domain.Bucket) AutoBalanceResponse {
	return AutoBalanceResponse{
		Buckets: ToBucketResponses(buckets),
		Valid:   allocation.ValidateSum(buckets),
		Delta:   allocation.Delta(buckets),
	}
}
