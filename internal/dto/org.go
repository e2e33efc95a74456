package dto

import (
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// CreateOrgRequest defines data for creating a new organization.
type CreateOrgRequest struct {
	Name string `json:"name" binding:"required,min=2,max=80"`
}

// OrgResponse defines data returned for an organization.
type OrgResponse struct {
	OrgID     string    `json:"orgID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToOrgResponse converts domain.Org to DTO.
func ToOrgResponse(o *domain.Org) OrgResponse {
	return OrgResponse{
		OrgID:     o.OrgID,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		CreatedBy: o.CreatedBy,
	}
}
