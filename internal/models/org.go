package models

import "time"

// Org is a row of the orgs table.
type Org struct {
	OrgID string `db:"org_id"`
	Name  string `db:"name"`
	AuditFields
}

// OrgMembership is a row of the org_members table.
type OrgMembership struct {
	OrgID    string    `db:"org_id"`
	UserID   string    `db:"user_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
