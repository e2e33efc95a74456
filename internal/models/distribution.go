package models

import (
	"github.com/shopspring/decimal"
)

// Distribution is a row of the distributions table.
type Distribution struct {
	DistributionID string              `db:"distribution_id"`
	OrgID          string              `db:"org_id"`
	Name           string              `db:"name"`
	IsDefault      bool                `db:"is_default"`
	EditMode       string              `db:"edit_mode"`
	BaseIncomeMode string              `db:"base_income_mode"`
	PlannedIncome  decimal.NullDecimal `db:"planned_income"`
	AuditFields
}

// Bucket is a row of the distribution_buckets table.
type Bucket struct {
	BucketID       string `db:"bucket_id"`
	DistributionID string `db:"distribution_id"`
	Name           string `db:"name"`
	PercentBps     int    `db:"percent_bps"`
	Color          string `db:"color"`
	Icon           string `db:"icon"`
	SortOrder      int    `db:"sort_order"`
	IsFlexible     bool   `db:"is_flexible"`
}
