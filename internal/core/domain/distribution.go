package domain

import "github.com/shopspring/decimal"

// TotalBps is the basis-point total every distribution must sum to (100%).
const TotalBps = 10000

// Bucket count limits for a saved distribution.
const (
	MinBuckets = 2
	MaxBuckets = 8
)

// EditMode controls whether the UI rebalances buckets automatically.
type EditMode string

const (
	EditModeAuto   EditMode = "auto"
	EditModeManual EditMode = "manual"
)

// BaseIncomeMode selects how the monthly base income is derived.
type BaseIncomeMode string

const (
	IncomeCurrentMonth  BaseIncomeMode = "current_month"
	IncomeAvg3M         BaseIncomeMode = "avg_3m"
	IncomeAvg6M         BaseIncomeMode = "avg_6m"
	IncomePlannedManual BaseIncomeMode = "planned_manual"
)

// TrailingMonths returns the averaging window for avg modes and 0 otherwise.
func (m BaseIncomeMode) TrailingMonths() int {
	switch m {
	case IncomeAvg3M:
		return 3
	case IncomeAvg6M:
		return 6
	default:
		return 0
	}
}

// Valid reports whether m is a known base income mode.
func (m BaseIncomeMode) Valid() bool {
	switch m {
	case IncomeCurrentMonth, IncomeAvg3M, IncomeAvg6M, IncomePlannedManual:
		return true
	}
	return false
}

// Distribution is an organization-scoped allocation scheme.
type Distribution struct {
	DistributionID string           `json:"distributionID"`
	OrgID          string           `json:"orgID"`
	Name           string           `json:"name"`
	IsDefault      bool             `json:"isDefault"`
	EditMode       EditMode         `json:"editMode"`
	BaseIncomeMode BaseIncomeMode   `json:"baseIncomeMode"`
	PlannedIncome  *decimal.Decimal `json:"plannedIncome,omitempty"`
	Buckets        []Bucket         `json:"buckets"`
	AuditFields
}

// Bucket is a named slice of the monthly income expressed in basis points.
type Bucket struct {
	BucketID       string `json:"bucketID"`
	DistributionID string `json:"distributionID"`
	Name           string `json:"name"`
	PercentBps     int    `json:"percentBps"`
	Color          string `json:"color"`
	Icon           string `json:"icon"`
	SortOrder      int    `json:"sortOrder"`
	IsFlexible     bool   `json:"isFlexible"`
}

// BalanceStrategy selects how AutoBalance redistributes the slack.
type BalanceStrategy string

const (
	StrategyFlexible     BalanceStrategy = "flexible"
	StrategyProportional BalanceStrategy = "proportional"
)
