package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portsrepo "github.com/moedinha/moedinha_backend/internal/core/ports/repositories"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
)

// orgService implements the OrgSvcFacade interface
type orgService struct {
	BaseService
	orgRepo portsrepo.OrgRepositoryFacade
}

// NewOrgService creates a new organization service with the provided dependencies
func NewOrgService(orgRepo portsrepo.OrgRepositoryFacade) portssvc.OrgSvcFacade {
	return &orgService{orgRepo: orgRepo}
}

var _ portssvc.OrgSvcFacade = (*orgService)(nil)

func (s *orgService) ResolveActiveOrg(ctx context.Context, userID string) (string, error) {
	memberships, err := s.orgRepo.ListMembershipsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list memberships", slog.String("user_id", userID))
		return "", err
	}
	if len(memberships) == 0 {
		return "", apperrors.ErrNoOrganization
	}
	if len(memberships) > 1 {
		s.LogDebug(ctx, "User belongs to several organizations, using the oldest membership",
			slog.String("user_id", userID), slog.Int("memberships", len(memberships)))
	}
	return memberships[0].OrgID, nil
}

func (s *orgService) CreateOrg(ctx context.Context, userID, name string) (*domain.Org, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("organization name is required")
	}
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	org := domain.Org{
		OrgID: uuid.NewString(),
		Name:  name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	owner := domain.OrgMembership{
		OrgID:    org.OrgID,
		UserID:   userID,
		Role:     domain.OrgRoleOwner,
		JoinedAt: now,
	}
	if err := s.orgRepo.SaveOrg(ctx, org, owner); err != nil {
		s.LogError(ctx, err, "Failed to create organization", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Organization created", slog.String("org_id", org.OrgID), slog.String("user_id", userID))
	return &org, nil
}
