package domain

import "time"

// Org is the tenant every financial record belongs to.
type Org struct {
	OrgID string `json:"orgID"`
	Name  string `json:"name"`
	AuditFields
}

// OrgRole is a member's role inside an organization.
type OrgRole string

const (
	OrgRoleOwner  OrgRole = "owner"
	OrgRoleMember OrgRole = "member"
)

// OrgMembership links a user to an organization.
type OrgMembership struct {
	OrgID    string    `json:"orgID"`
	UserID   string    `json:"userID"`
	Role     OrgRole   `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// BatchResult summarises a scheduled job run over all organizations.
type BatchResult struct {
	Orgs      int      `json:"orgs"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Skipped   int      `json:"skipped"`
	Emitted   int      `json:"emitted"` // Alerts for metrics runs, transactions for recurring runs
	Errors    []string `json:"errors,omitempty"`
}
