package ledger_test

import (
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteEnv) TestAddGoalSchedule() {
	// August 2026 through July 2027 is twelve months, both inclusive.
	goal, err := suite.ledger.AddGoal("Vacation", "Two weeks Italy", types.NewMonth(2027, 7), decimal.NewFromInt(1200))
	suite.Require().NoError(err)

	suite.assertDecimal(100, goal.MonthlyContribution)

	// Every month of the horizon carries one contribution.
	for i := 0; i < 12; i++ {
		view := suite.ledger.MonthView(types.NewMonth(2026, 8).AddDate(0, i))
		suite.Require().Len(view.Categories, 1)
		suite.assertDecimal(100, view.Categories[0].Budgeted)
	}

	// Goal funding bypasses the pool entirely.
	suite.assertDecimal(0, suite.ledger.ReadyToAssign())
}

func (suite *TestSuiteEnv) TestAddGoalCreatesBackingCategory() {
	_, err := suite.ledger.AddGoal("Vacation", "", types.NewMonth(2027, 1), decimal.NewFromInt(500))
	suite.Require().NoError(err)

	categories := suite.ledger.Categories()
	suite.Require().Len(categories, 1)
	suite.Assert().Equal("Vacation", categories[0].Name)
	suite.Assert().Equal(ledger.GoalsParentLabel, categories[0].ParentCategory)
}

func (suite *TestSuiteEnv) TestAddGoalValidation() {
	_, err := suite.ledger.AddGoal("  ", "", types.NewMonth(2027, 1), decimal.NewFromInt(500))
	suite.Assert().ErrorIs(err, ledger.ErrGoalNameEmpty)

	_, err = suite.ledger.AddGoal("Vacation", "", types.NewMonth(2027, 1), decimal.Zero)
	suite.Assert().ErrorIs(err, ledger.ErrGoalAmountNotPositive)

	// The current month is not a valid due month.
	_, err = suite.ledger.AddGoal("Vacation", "", types.NewMonth(2026, 8), decimal.NewFromInt(500))
	suite.Assert().ErrorIs(err, ledger.ErrGoalDueNotInFuture)

	_, err = suite.ledger.AddGoal("Vacation", "", types.NewMonth(2025, 12), decimal.NewFromInt(500))
	suite.Assert().ErrorIs(err, ledger.ErrGoalDueNotInFuture)
}

func (suite *TestSuiteEnv) TestAddGoalNameCollision() {
	suite.category("Vacation")

	_, err := suite.ledger.AddGoal("Vacation", "", types.NewMonth(2027, 1), decimal.NewFromInt(500))
	suite.Assert().ErrorIs(err, ledger.ErrCategoryNameTaken)
}

func (suite *TestSuiteEnv) TestGoalProgress() {
	goal, err := suite.ledger.AddGoal("Vacation", "", types.NewMonth(2027, 7), decimal.NewFromInt(1200))
	suite.Require().NoError(err)

	// The schedule pre-funds the whole target.
	progress, err := suite.ledger.GoalProgress(goal.ID)
	suite.Require().NoError(err)
	suite.assertDecimal(100, progress)

	// Clearing part of the schedule lowers the progress.
	categories := suite.ledger.Categories()
	suite.Require().Len(categories, 1)
	for i := 3; i < 12; i++ {
		month := types.NewMonth(2026, 8).AddDate(0, i)
		suite.Require().NoError(suite.ledger.SetAllocation(month, categories[0].ID, decimal.Zero))
	}

	progress, err = suite.ledger.GoalProgress(goal.ID)
	suite.Require().NoError(err)
	suite.assertDecimal(25, progress)
}

func (suite *TestSuiteEnv) TestGoalNotFound() {
	_, err := suite.ledger.Goal(uuid.New())
	suite.Assert().ErrorIs(err, ledger.ErrGoalNotFound)

	_, err = suite.ledger.GoalProgress(uuid.New())
	suite.Assert().ErrorIs(err, ledger.ErrGoalNotFound)
}

func (suite *TestSuiteEnv) TestGoals() {
	_, err := suite.ledger.AddGoal("Vacation", "", types.NewMonth(2027, 1), decimal.NewFromInt(500))
	suite.Require().NoError(err)
	_, err = suite.ledger.AddGoal("New laptop", "", types.NewMonth(2026, 12), decimal.NewFromInt(2000))
	suite.Require().NoError(err)

	goals := suite.ledger.Goals()
	suite.Require().Len(goals, 2)
	suite.Assert().Equal("Vacation", goals[0].Name)
	suite.Assert().Equal("New laptop", goals[1].Name)
}

func (suite *TestSuiteEnv) TestDeleteGoalKeepsCategoryAndMoney() {
	goal, err := suite.ledger.AddGoal("Vacation", "", types.NewMonth(2027, 7), decimal.NewFromInt(1200))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.ledger.DeleteGoal(goal.ID))

	_, err = suite.ledger.Goal(goal.ID)
	suite.Assert().ErrorIs(err, ledger.ErrGoalNotFound)

	// The backing category and the budgeted money stay.
	suite.Require().Len(suite.ledger.Categories(), 1)
	view := suite.ledger.MonthView(types.NewMonth(2026, 8))
	suite.assertDecimal(100, view.Categories[0].Budgeted)
}
