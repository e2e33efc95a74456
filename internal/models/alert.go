package models

import "time"

// AlertDefinition is a row of the alert_definitions catalog.
type AlertDefinition struct {
	Code            string   `db:"code"`
	Severity        string   `db:"severity"`
	CooldownHours   int      `db:"cooldown_hours"`
	HysteresisPct   *float64 `db:"hysteresis_pct"`
	MessageTemplate string   `db:"message_template"`
	CTAPrimary      *string  `db:"cta_primary"`
	CTASecondary    *string  `db:"cta_secondary"`
}

// Alert is a row of the append-only alerts table.
type Alert struct {
	AlertID   string         `db:"alert_id"`
	OrgID     string         `db:"org_id"`
	UserID    *string        `db:"user_id"`
	Month     time.Time      `db:"month"`
	Code      string         `db:"code"`
	Severity  string         `db:"severity"`
	Message   string         `db:"message"`
	Context   map[string]any `db:"context"` // JSONB
	CreatedAt time.Time      `db:"created_at"`
}
