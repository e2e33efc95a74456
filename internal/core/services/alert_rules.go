package services

import (
	"math"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// Alert thresholds.
const (
	pendingPctThreshold    = 10.0 // fires above
	pendingCountThreshold  = 20   // fires at or above
	concentrationThreshold = 60.0 // % of total spend, fires above
	projectionThreshold    = 90.0 // % of budget, fires at or above
)

// ruleShape tags how a rule is evaluated.
type ruleShape int

const (
	// shapeOrg rules are evaluated once against aggregate figures.
	shapeOrg ruleShape = iota
	// shapeBucket rules walk buckets in sort order; the first match wins.
	shapeBucket
	// shapeUnsupported rules are defined but never fire.
	shapeUnsupported
)

// alertInput is everything a rule can look at.
type alertInput struct {
	month       string
	metrics     *domain.MonthlyMetrics
	bucketNames map[string]string
	pending     domain.PendingStats
}

// alertRule is a tagged variant keyed by alert code. Exactly one of
// matchBucket/matchOrg is set, according to shape.
type alertRule struct {
	shape       ruleShape
	matchBucket func(m domain.BucketMetric) bool
	matchOrg    func(in alertInput) (map[string]any, bool)
}

var alertRules = map[domain.AlertCode]alertRule{
	domain.AlertBucket70:   {shape: shapeBucket, matchBucket: spendAtLeast(70)},
	domain.AlertBucket90:   {shape: shapeBucket, matchBucket: spendAtLeast(90)},
	domain.AlertBucketOver: {shape: shapeBucket, matchBucket: spendAtLeast(100)},
	domain.AlertPace15:     {shape: shapeBucket, matchBucket: paceOverrunAtLeast(0.15)},
	domain.AlertPace30:     {shape: shapeBucket, matchBucket: paceOverrunAtLeast(0.30)},
	domain.AlertProjection: {shape: shapeBucket, matchBucket: func(m domain.BucketMetric) bool {
		return m.Budget.IsPositive() && projectionPct(m) >= projectionThreshold
	}},
	domain.AlertConcentrationBucket: {shape: shapeOrg, matchOrg: matchConcentration},
	// Needs per-transaction ranking that the metrics do not carry.
	domain.AlertConcentrationTop5: {shape: shapeUnsupported},
	domain.AlertPendingPct: {shape: shapeOrg, matchOrg: func(in alertInput) (map[string]any, bool) {
		if in.pending.Pct <= pendingPctThreshold {
			return nil, false
		}
		return pendingContext(in), true
	}},
	domain.AlertPendingCount: {shape: shapeOrg, matchOrg: func(in alertInput) (map[string]any, bool) {
		if in.pending.Count < pendingCountThreshold {
			return nil, false
		}
		return pendingContext(in), true
	}},
}

// evaluate runs the rule and returns the alert context when it fires.
func (r alertRule) evaluate(in alertInput) (map[string]any, bool) {
	switch r.shape {
	case shapeBucket:
		for _, m := range in.metrics.Buckets {
			if r.matchBucket(m) {
				return bucketContext(in, m), true
			}
		}
		return nil, false
	case shapeOrg:
		return r.matchOrg(in)
	default:
		return nil, false
	}
}

func spendAtLeast(pct float64) func(domain.BucketMetric) bool {
	return func(m domain.BucketMetric) bool {
		return m.Budget.IsPositive() && m.SpendPct >= pct
	}
}

func paceOverrunAtLeast(ratio float64) func(domain.BucketMetric) bool {
	return func(m domain.BucketMetric) bool {
		return m.PaceIdeal.IsPositive() && paceOverrun(m) >= ratio
	}
}

func paceOverrun(m domain.BucketMetric) float64 {
	if !m.PaceIdeal.IsPositive() {
		return 0
	}
	return m.Spend.Sub(m.PaceIdeal).Div(m.PaceIdeal).InexactFloat64()
}

func projectionPct(m domain.BucketMetric) float64 {
	if !m.Budget.IsPositive() {
		return 0
	}
	return m.Projection.Div(m.Budget).Mul(hundred).InexactFloat64()
}

func matchConcentration(in alertInput) (map[string]any, bool) {
	total := in.metrics.TotalSpend
	if !total.IsPositive() {
		return nil, false
	}
	for _, m := range in.metrics.Buckets {
		share := m.Spend.Div(total).Mul(hundred).InexactFloat64()
		if share > concentrationThreshold {
			ctx := bucketContext(in, m)
			ctx["concentration_pct"] = round1(share)
			ctx["total_spend"] = utils.FormatMoney(total)
			return ctx, true
		}
	}
	return nil, false
}

func bucketContext(in alertInput, m domain.BucketMetric) map[string]any {
	return map[string]any{
		"month":          in.month,
		"bucket_id":      m.BucketID,
		"bucket_name":    in.bucketNames[m.BucketID],
		"spend_pct":      round1(m.SpendPct),
		"spend":          utils.FormatMoney(m.Spend),
		"budget":         utils.FormatMoney(m.Budget),
		"remaining":      utils.FormatMoney(decimal.Max(m.Budget.Sub(m.Spend), decimal.Zero)),
		"pace_ideal":     utils.FormatMoney(m.PaceIdeal),
		"pace_pct":       round1(paceOverrun(m) * 100),
		"projection":     utils.FormatMoney(m.Projection),
		"projection_pct": round1(projectionPct(m)),
	}
}

func pendingContext(in alertInput) map[string]any {
	return map[string]any{
		"month":         in.month,
		"pending_count": in.pending.Count,
		"pending_pct":   round1(in.pending.Pct),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
