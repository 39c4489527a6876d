package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteEnv) allocate(categoryID uuid.UUID, month string, amount int64) {
	recorder := test.Request(suite.T(), suite.co, http.MethodPatch,
		fmt.Sprintf("http://example.com/v1/months/%s/categories/%s", month, categoryID),
		v1.AllocationEditable{Assigned: decimal.NewFromInt(amount)})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
}

func (suite *TestSuiteEnv) TestGetMonth() {
	suite.createTestIncome(3000)
	category := suite.createTestCategory("Groceries")
	suite.allocate(category.ID, "2026-08", 400)

	id := category.ID.String()
	suite.createTestExpense(&id, 150, "Weekly shopping")

	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/months/2026-08", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(decimal.NewFromInt(3000).Equal(response.Data.Income))
	suite.Assert().True(decimal.NewFromInt(2600).Equal(response.Data.ReadyToAssign))
	suite.Assert().Equal("$ 2600.00", response.Data.ReadyToAssignFormatted)

	suite.Require().Len(response.Data.Categories, 1)
	suite.Assert().True(decimal.NewFromInt(250).Equal(response.Data.Categories[0].Available))
	suite.Assert().Equal("$ 250.00", response.Data.Categories[0].AvailableFormatted)
}

func (suite *TestSuiteEnv) TestGetMonthInvalid() {
	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/months/not-a-month", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteEnv) TestSetAllocationInsufficientPool() {
	suite.createTestIncome(100)
	category := suite.createTestCategory("Groceries")

	recorder := test.Request(suite.T(), suite.co, http.MethodPatch,
		fmt.Sprintf("http://example.com/v1/months/2026-08/categories/%s", category.ID),
		v1.AllocationEditable{Assigned: decimal.NewFromInt(500)})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteEnv) TestQuickBudget() {
	suite.createTestIncome(1000)
	category := suite.createTestCategory("Groceries")
	suite.allocate(category.ID, "2026-07", 250)

	recorder := test.Request(suite.T(), suite.co, http.MethodPost,
		fmt.Sprintf("http://example.com/v1/months/2026-08/categories/%s/quick-budget", category.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.QuickBudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(decimal.NewFromInt(250).Equal(response.Data.Budgeted))

	// A second call has nothing to top up.
	recorder = test.Request(suite.T(), suite.co, http.MethodPost,
		fmt.Sprintf("http://example.com/v1/months/2026-08/categories/%s/quick-budget", category.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteEnv) TestCopyCategoriesForward() {
	suite.createTestCategory("Groceries")
	suite.createTestCategory("Rent")

	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/months/2026-08/copy-forward", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CopyForwardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(2, response.Data.Copied)
}
