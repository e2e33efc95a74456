package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Scope is the explicit request context every core operation runs under.
// Now is captured once per request (or per batch tick) so that every date
// computation inside one operation agrees on "today".
type Scope struct {
	UserID string    // Empty for scheduled jobs
	OrgID  string    // Active organization
	Now    time.Time // Wall clock in the configured location
}

// Today returns the scope's current calendar date at midnight in the scope's location.
func (s Scope) Today() time.Time {
	return time.Date(s.Now.Year(), s.Now.Month(), s.Now.Day(), 0, 0, 0, 0, s.Now.Location())
}

// Location returns the scope's time zone, defaulting to UTC.
func (s Scope) Location() *time.Location {
	if s.Now.IsZero() {
		return time.UTC
	}
	return s.Now.Location()
}
