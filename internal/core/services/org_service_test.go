package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrgServiceTestSuite struct {
	suite.Suite
	orgRepo *MockOrgRepository
	service portssvc.OrgSvcFacade
	ctx     context.Context
}

func (suite *OrgServiceTestSuite) SetupTest() {
	suite.orgRepo = new(MockOrgRepository)
	suite.service = services.NewOrgService(suite.orgRepo)
	suite.ctx = context.Background()
}

func (suite *OrgServiceTestSuite) TestResolveActiveOrg_FirstMembership() {
	suite.orgRepo.On("ListMembershipsByUser", suite.ctx, "user-1").Return([]domain.OrgMembership{
		{OrgID: "org-old", UserID: "user-1", Role: domain.OrgRoleMember, JoinedAt: day(2023, time.May, 1)},
		{OrgID: "org-new", UserID: "user-1", Role: domain.OrgRoleOwner, JoinedAt: day(2024, time.May, 1)},
	}, nil).Once()

	orgID, err := suite.service.ResolveActiveOrg(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal("org-old", orgID)
}

func (suite *OrgServiceTestSuite) TestResolveActiveOrg_NoMembership() {
	suite.orgRepo.On("ListMembershipsByUser", suite.ctx, "user-1").Return([]domain.OrgMembership{}, nil).Once()

	orgID, err := suite.service.ResolveActiveOrg(suite.ctx, "user-1")

	suite.Empty(orgID)
	suite.ErrorIs(err, apperrors.ErrNoOrganization)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrgServiceTestSuite) TestCreateOrg_Success() {
	suite.orgRepo.On("SaveOrg", suite.ctx,
		mock.MatchedBy(func(o domain.Org) bool { return o.Name == "Família" && o.CreatedBy == "user-1" }),
		mock.MatchedBy(func(m domain.OrgMembership) bool { return m.UserID == "user-1" && m.Role == domain.OrgRoleOwner }),
	).Return(nil).Once()

	org, err := suite.service.CreateOrg(suite.ctx, "user-1", "  Família ")

	suite.Require().NoError(err)
	suite.NotEmpty(org.OrgID)
	suite.Equal("Família", org.Name)
	suite.WithinDuration(time.Now(), org.CreatedAt, time.Second)
	suite.orgRepo.AssertExpectations(suite.T())
}

func (suite *OrgServiceTestSuite) TestCreateOrg_Validation() {
	org, err := suite.service.CreateOrg(suite.ctx, "user-1", "   ")

	suite.Nil(org)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.orgRepo.AssertNotCalled(suite.T(), "SaveOrg", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrgServiceTestSuite) TestCreateOrg_StoreError() {
	storeErr := apperrors.NewAppError(500, "permission denied creating organization", assertErr)
	suite.orgRepo.On("SaveOrg", suite.ctx, mock.Anything, mock.Anything).Return(storeErr).Once()

	org, err := suite.service.CreateOrg(suite.ctx, "user-1", "Casa")

	suite.Nil(org)
	suite.ErrorIs(err, assertErr)
	suite.Contains(err.Error(), "permission denied")
}

func TestOrgServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrgServiceTestSuite))
}
