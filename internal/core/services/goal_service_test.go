package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/core/services"
	"github.com/moedinha/moedinha_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func emergencyFund(id string, target int64, updatedAt time.Time) domain.Goal {
	return domain.Goal{
		GoalID:        id,
		OrgID:         testOrgID,
		Name:          "Reserva",
		GoalType:      domain.GoalEmergencyFund,
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.NewFromInt(1000),
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     updatedAt.Add(-24 * time.Hour),
			CreatedBy:     "user-0",
			LastUpdatedAt: updatedAt,
		},
	}
}

type GoalServiceTestSuite struct {
	suite.Suite
	goalRepo *MockGoalRepository
	service  portssvc.GoalSvcFacade
	ctx      context.Context
	scope    domain.Scope
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.goalRepo = new(MockGoalRepository)
	suite.service = services.NewGoalService(suite.goalRepo)
	suite.ctx = context.Background()
	suite.scope = domain.Scope{UserID: "user-1", OrgID: testOrgID, Now: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)}
}

func (suite *GoalServiceTestSuite) TestGetEmergencyFund_PicksMostRecentDuplicate() {
	suite.goalRepo.On("ListActiveGoalsByType", suite.ctx, testOrgID, domain.GoalEmergencyFund).Return([]domain.Goal{
		emergencyFund("g-old", 10000, day(2023, time.June, 1)),
		emergencyFund("g-new", 20000, day(2024, time.February, 1)),
	}, nil).Once()

	goal, err := suite.service.GetEmergencyFund(suite.ctx, suite.scope)

	suite.Require().NoError(err)
	suite.Equal("g-new", goal.GoalID)
}

func (suite *GoalServiceTestSuite) TestGetEmergencyFund_NotConfigured() {
	suite.goalRepo.On("ListActiveGoalsByType", suite.ctx, testOrgID, domain.GoalEmergencyFund).Return([]domain.Goal{}, nil).Once()

	goal, err := suite.service.GetEmergencyFund(suite.ctx, suite.scope)

	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestSaveEmergencyFund_UpdatesExisting() {
	existing := emergencyFund("g-1", 10000, day(2024, time.January, 1))
	suite.goalRepo.On("ListActiveGoalsByType", suite.ctx, testOrgID, domain.GoalEmergencyFund).Return([]domain.Goal{existing}, nil).Once()
	suite.goalRepo.On("SaveEmergencyFund", suite.ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.GoalID == "g-1" && g.TargetAmount.Equal(decimal.NewFromInt(30000)) &&
			g.CurrentAmount.Equal(decimal.NewFromInt(1000)) && g.Name == "Reserva" && g.CreatedBy == "user-0"
	})).Return(nil).Once()

	goal, err := suite.service.SaveEmergencyFund(suite.ctx, suite.scope, dto.SaveEmergencyFundRequest{TargetAmount: decimal.NewFromInt(30000)})

	suite.Require().NoError(err)
	suite.Equal(suite.scope.Now, goal.LastUpdatedAt)
	suite.goalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestSaveEmergencyFund_CreatesWithDefaultName() {
	suite.goalRepo.On("ListActiveGoalsByType", suite.ctx, testOrgID, domain.GoalEmergencyFund).Return([]domain.Goal{}, nil).Once()
	suite.goalRepo.On("SaveEmergencyFund", suite.ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	goal, err := suite.service.SaveEmergencyFund(suite.ctx, suite.scope, dto.SaveEmergencyFundRequest{TargetAmount: decimal.NewFromInt(12000)})

	suite.Require().NoError(err)
	suite.NotEmpty(goal.GoalID)
	suite.Equal("Reserva de emergência", goal.Name)
	suite.True(goal.CurrentAmount.IsZero())
	suite.True(goal.IsActive)
}

func (suite *GoalServiceTestSuite) TestSaveEmergencyFund_TargetMustBePositive() {
	suite.goalRepo.On("ListActiveGoalsByType", suite.ctx, testOrgID, domain.GoalEmergencyFund).Return([]domain.Goal{}, nil).Once()

	goal, err := suite.service.SaveEmergencyFund(suite.ctx, suite.scope, dto.SaveEmergencyFundRequest{TargetAmount: decimal.Zero})

	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.goalRepo.AssertNotCalled(suite.T(), "SaveEmergencyFund", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Savings() {
	suite.goalRepo.On("SaveGoal", suite.ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()
	targetDate := "2025-12-01"

	goal, err := suite.service.CreateGoal(suite.ctx, suite.scope, dto.CreateGoalRequest{
		Name:         "Viagem",
		GoalType:     domain.GoalSavings,
		TargetAmount: decimal.NewFromInt(8000),
		TargetDate:   &targetDate,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.GoalSavings, goal.GoalType)
	suite.Require().NotNil(goal.TargetDate)
	suite.True(goal.TargetDate.Equal(day(2025, time.December, 1)))
	suite.goalRepo.AssertNotCalled(suite.T(), "ListActiveGoalsByType", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_SecondEmergencyFundConflicts() {
	suite.goalRepo.On("ListActiveGoalsByType", suite.ctx, testOrgID, domain.GoalEmergencyFund).Return([]domain.Goal{
		emergencyFund("g-1", 10000, day(2024, time.January, 1)),
	}, nil).Once()

	goal, err := suite.service.CreateGoal(suite.ctx, suite.scope, dto.CreateGoalRequest{
		Name:         "Outra reserva",
		GoalType:     domain.GoalEmergencyFund,
		TargetAmount: decimal.NewFromInt(5000),
	})

	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_NegativeTarget() {
	goal, err := suite.service.CreateGoal(suite.ctx, suite.scope, dto.CreateGoalRequest{
		Name:         "Dívida",
		GoalType:     domain.GoalDebt,
		TargetAmount: decimal.NewFromInt(-10),
	})

	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GoalServiceTestSuite) TestListGoals_EmptyIsNotNil() {
	suite.goalRepo.On("ListGoals", suite.ctx, testOrgID).Return(nil, nil).Once()

	goals, err := suite.service.ListGoals(suite.ctx, suite.scope)

	suite.Require().NoError(err)
	suite.NotNil(goals)
	suite.Empty(goals)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
