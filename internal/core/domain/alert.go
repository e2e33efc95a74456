package domain

import "time"

// AlertCode is the stable identifier of an alert rule.
type AlertCode string

const (
	AlertBucket70            AlertCode = "bucket_70"
	AlertBucket90            AlertCode = "bucket_90"
	AlertBucketOver          AlertCode = "bucket_over"
	AlertPace15              AlertCode = "pace_15"
	AlertPace30              AlertCode = "pace_30"
	AlertProjection          AlertCode = "projection"
	AlertConcentrationBucket AlertCode = "concentration_bucket"
	AlertConcentrationTop5   AlertCode = "concentration_top5"
	AlertPendingPct          AlertCode = "pending_pct"
	AlertPendingCount        AlertCode = "pending_count"
)

// KnownAlertCodes lists every code the evaluator understands, in evaluation order.
var KnownAlertCodes = []AlertCode{
	AlertBucket70,
	AlertBucket90,
	AlertBucketOver,
	AlertPace15,
	AlertPace30,
	AlertProjection,
	AlertConcentrationBucket,
	AlertConcentrationTop5,
	AlertPendingPct,
	AlertPendingCount,
}

// AlertSeverity is the display severity of an alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// DefaultHysteresisPct applies when a definition carries no hysteresis threshold.
const DefaultHysteresisPct = 5.0

// AlertDefinition is a seeded rule template.
type AlertDefinition struct {
	Code            AlertCode     `json:"code"`
	Severity        AlertSeverity `json:"severity"`
	CooldownHours   int           `json:"cooldownHours"`
	HysteresisPct   *float64      `json:"hysteresisPct,omitempty"`
	MessageTemplate string        `json:"messageTemplate"`
	CTAPrimary      *string       `json:"ctaPrimary,omitempty"`
	CTASecondary    *string       `json:"ctaSecondary,omitempty"`
}

// Hysteresis returns the configured hysteresis threshold or the default.
func (d AlertDefinition) Hysteresis() float64 {
	if d.HysteresisPct == nil {
		return DefaultHysteresisPct
	}
	return *d.HysteresisPct
}

// Cooldown returns the cooldown window as a duration.
func (d AlertDefinition) Cooldown() time.Duration {
	return time.Duration(d.CooldownHours) * time.Hour
}

// Alert is an emitted alert instance. Alerts are append-only.
type Alert struct {
	AlertID   string         `json:"alertID"`
	OrgID     string         `json:"orgID"`
	UserID    *string        `json:"userID,omitempty"`
	Month     time.Time      `json:"month"`
	Code      AlertCode      `json:"code"`
	Severity  AlertSeverity  `json:"severity"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SpendPct extracts the spend_pct context value used for hysteresis.
func (a Alert) SpendPct() (float64, bool) {
	return ContextFloat(a.Context, "spend_pct")
}

// ContextFloat reads a numeric value out of an alert context map. Values that
// round-tripped through JSON arrive as float64; freshly built ones may be ints.
func ContextFloat(ctx map[string]any, key string) (float64, bool) {
	v, ok := ctx[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
