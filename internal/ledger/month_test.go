package ledger_test

import (
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteEnv) TestSetAllocationSequence() {
	suite.fund(1000)
	category := suite.category("Groceries")
	current := suite.ledger.CurrentMonth()

	suite.Require().NoError(suite.ledger.SetAllocation(current, category.ID, decimal.NewFromInt(300)))
	suite.assertDecimal(700, suite.ledger.ReadyToAssign())

	// Raising the allocation only debits the difference.
	suite.Require().NoError(suite.ledger.SetAllocation(current, category.ID, decimal.NewFromInt(500)))
	suite.assertDecimal(500, suite.ledger.ReadyToAssign())

	// Lowering it returns the difference.
	suite.Require().NoError(suite.ledger.SetAllocation(current, category.ID, decimal.NewFromInt(100)))
	suite.assertDecimal(900, suite.ledger.ReadyToAssign())
}

func (suite *TestSuiteEnv) TestSetAllocationInsufficientPool() {
	suite.fund(200)
	category := suite.category("Groceries")
	current := suite.ledger.CurrentMonth()

	suite.Require().NoError(suite.ledger.SetAllocation(current, category.ID, decimal.NewFromInt(150)))

	err := suite.ledger.SetAllocation(current, category.ID, decimal.NewFromInt(300))
	suite.Require().ErrorIs(err, ledger.ErrInsufficientPool)

	// A rejected allocation leaves pool and allocation untouched.
	suite.assertDecimal(50, suite.ledger.ReadyToAssign())
	view := suite.ledger.MonthView(current)
	suite.Require().Len(view.Categories, 1)
	suite.assertDecimal(150, view.Categories[0].Budgeted)
}

func (suite *TestSuiteEnv) TestSetAllocationNegative() {
	category := suite.category("Groceries")

	err := suite.ledger.SetAllocation(suite.ledger.CurrentMonth(), category.ID, decimal.NewFromInt(-1))
	suite.Assert().ErrorIs(err, ledger.ErrAllocationNegative)
}

func (suite *TestSuiteEnv) TestSetAllocationUnknownCategory() {
	err := suite.ledger.SetAllocation(suite.ledger.CurrentMonth(), uuid.New(), decimal.NewFromInt(10))
	suite.Assert().ErrorIs(err, ledger.ErrCategoryNotFound)
}

func (suite *TestSuiteEnv) TestQuickBudget() {
	suite.fund(1000)
	category := suite.category("Groceries")
	current := suite.ledger.CurrentMonth()

	suite.Require().NoError(suite.ledger.SetAllocation(current.AddDate(0, -1), category.ID, decimal.NewFromInt(250)))
	suite.Require().NoError(suite.ledger.SetAllocation(current, category.ID, decimal.NewFromInt(100)))

	// Only the shortfall to the previous month is budgeted.
	budgeted, err := suite.ledger.QuickBudget(current, category.ID)
	suite.Require().NoError(err)
	suite.assertDecimal(150, budgeted)
	suite.assertDecimal(500, suite.ledger.ReadyToAssign())

	view := suite.ledger.MonthView(current)
	suite.assertDecimal(250, view.Categories[0].Budgeted)
}

func (suite *TestSuiteEnv) TestQuickBudgetAlreadyCovered() {
	suite.fund(1000)
	category := suite.category("Groceries")
	current := suite.ledger.CurrentMonth()

	suite.Require().NoError(suite.ledger.SetAllocation(current.AddDate(0, -1), category.ID, decimal.NewFromInt(100)))
	suite.Require().NoError(suite.ledger.SetAllocation(current, category.ID, decimal.NewFromInt(100)))

	_, err := suite.ledger.QuickBudget(current, category.ID)
	suite.Assert().ErrorIs(err, ledger.ErrNothingToDo)
	suite.assertDecimal(800, suite.ledger.ReadyToAssign())
}

func (suite *TestSuiteEnv) TestQuickBudgetNoPreviousAllocation() {
	category := suite.category("Groceries")

	_, err := suite.ledger.QuickBudget(suite.ledger.CurrentMonth(), category.ID)
	suite.Assert().ErrorIs(err, ledger.ErrNoPreviousAllocation)
}

func (suite *TestSuiteEnv) TestCopyCategoriesForward() {
	suite.fund(100)
	groceries := suite.category("Groceries")
	suite.category("Rent")
	inactive := suite.category("Old")
	_, err := suite.ledger.DeactivateCategory(inactive.ID)
	suite.Require().NoError(err)

	current := suite.ledger.CurrentMonth()
	next := current.AddDate(0, 1)
	suite.Require().NoError(suite.ledger.SetAllocation(next, groceries.ID, decimal.NewFromInt(100)))

	// Only active categories without an allocation get one.
	copied := suite.ledger.CopyCategoriesForward(current)
	suite.Assert().Equal(1, copied)

	view := suite.ledger.MonthView(next)
	suite.Require().Len(view.Categories, 2)
	suite.assertDecimal(100, view.Categories[0].Budgeted) // Groceries kept its allocation
	suite.assertDecimal(0, view.Categories[1].Budgeted)   // Rent was created at zero
}

func (suite *TestSuiteEnv) TestMonthViewIdentity() {
	suite.fund(3000)
	groceries := suite.category("Groceries")
	rent := suite.category("Rent")
	current := suite.ledger.CurrentMonth()

	suite.Require().NoError(suite.ledger.SetAllocation(current, groceries.ID, decimal.NewFromInt(400)))
	suite.Require().NoError(suite.ledger.SetAllocation(current, rent.ID, decimal.NewFromInt(1200)))

	suite.expense(groceries, 150.5, "Weekly shopping")
	suite.expense(groceries, 49.5, "Farmers market")
	suite.expense(rent, 1200, "August rent")

	view := suite.ledger.MonthView(current)
	suite.assertDecimal(3000, view.Income)
	suite.assertDecimal(1600, view.Budgeted)
	suite.assertDecimal(1400, view.Activity)
	suite.assertDecimal(200, view.Available)
	suite.assertDecimal(1400, view.ReadyToAssign)

	// available = budgeted - activity holds for every category.
	for _, category := range view.Categories {
		suite.Assert().True(category.Available.Equal(category.Budgeted.Sub(category.Activity)), "identity broken for %s", category.Category.Name)
	}
}

func (suite *TestSuiteEnv) TestMonthViewOverspending() {
	suite.fund(100)
	category := suite.category("Groceries")
	current := suite.ledger.CurrentMonth()

	suite.Require().NoError(suite.ledger.SetAllocation(current, category.ID, decimal.NewFromInt(50)))
	suite.expense(category, 80, "Weekly shopping")

	// Overspending goes negative on the category, the pool is untouched.
	view := suite.ledger.MonthView(current)
	suite.assertDecimal(-30, view.Categories[0].Available)
	suite.assertDecimal(50, view.ReadyToAssign)
}

func (suite *TestSuiteEnv) TestMonthViewEmptyMonth() {
	view := suite.ledger.MonthView(types.NewMonth(2030, 1))
	suite.assertDecimal(0, view.Income)
	suite.Assert().Empty(view.Categories)
}

func (suite *TestSuiteEnv) TestCurrentMonth() {
	suite.Assert().Equal(types.NewMonth(2026, 8), suite.ledger.CurrentMonth())
}
