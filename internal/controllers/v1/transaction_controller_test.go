package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteEnv) createTestExpense(categoryID *string, amount float64, description string) models.Transaction {
	editable := map[string]any{
		"date":        "2026-08-14",
		"amount":      amount,
		"description": description,
		"type":        "expense",
		"categoryId":  categoryID,
	}

	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/transactions?confirm=duplicate", editable)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteEnv) TestCreateTransaction() {
	transaction := suite.createTestIncome(2500)

	suite.Assert().Equal(models.TransactionTypeIncome, transaction.Type)
	suite.Assert().True(decimal.NewFromInt(2500).Equal(transaction.Amount))
	suite.Assert().Nil(transaction.CategoryID)
}

func (suite *TestSuiteEnv) TestCreateTransactionEmptyBody() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteEnv) TestCreateExpenseWithoutCategory() {
	editable := v1.TransactionEditable{
		Date:        types.DateOf(testTime),
		Amount:      decimal.NewFromInt(10),
		Description: "Weekly shopping",
		Type:        models.TransactionTypeExpense,
	}

	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/transactions", editable)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteEnv) TestDuplicateTransactionConflict() {
	category := suite.createTestCategory("Groceries")
	id := category.ID.String()
	suite.createTestExpense(&id, 42.17, "Weekly shopping")

	editable := map[string]any{
		"date":        "2026-08-14",
		"amount":      42.17,
		"description": "Weekly shopping",
		"type":        "expense",
		"categoryId":  id,
	}

	// The suspected duplicate is answered with 409 and not inserted.
	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/transactions", editable)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	// With explicit confirmation it goes through.
	recorder = test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/transactions?confirm=duplicate", editable)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/transactions", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteEnv) TestGetTransactionsFilters() {
	suite.createTestIncome(2500)
	category := suite.createTestCategory("Groceries")
	id := category.ID.String()
	suite.createTestExpense(&id, 42.17, "Weekly shopping")
	suite.createTestExpense(&id, 12.50, "Farmers market")

	tests := []struct {
		query string
		count int
	}{
		{"type=income", 1},
		{"type=expense", 2},
		{"category=" + id, 2},
		{"description=*market*", 1},
		{"month=2026-08", 3},
		{"month=2026-09", 0},
		{"limit=2", 2},
		{"offset=2", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, tt.query)
	}
}

func (suite *TestSuiteEnv) TestGetTransactionsPagination() {
	suite.createTestIncome(2500)
	category := suite.createTestCategory("Groceries")
	id := category.ID.String()
	suite.createTestExpense(&id, 42.17, "Weekly shopping")

	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/transactions?limit=1&offset=1", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(1, response.Pagination.Count)
	suite.Assert().Equal(uint(1), response.Pagination.Offset)
	suite.Assert().Equal(2, response.Pagination.Total)
}

func (suite *TestSuiteEnv) TestGetTransactionsPaginationBounds() {
	suite.createTestIncome(2500)
	suite.createTestIncome(300)

	tests := []struct {
		query string
		count int
	}{
		{"offset=5", 0},
		{"offset=18446744073709551615", 0},
		{"offset=1&limit=9223372036854775807", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Equal(tt.count, response.Pagination.Count, tt.query)
		suite.Assert().Equal(2, response.Pagination.Total, tt.query)
	}
}

func (suite *TestSuiteEnv) TestUpdateTransaction() {
	transaction := suite.createTestIncome(2500)

	editable := v1.TransactionEditable{
		Date:        types.DateOf(testTime),
		Amount:      decimal.NewFromInt(3000),
		Description: "Salary",
		Type:        models.TransactionTypeIncome,
	}

	recorder := test.Request(suite.T(), suite.co, http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), editable)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
	suite.Assert().True(decimal.NewFromInt(3000).Equal(response.Data.Amount))
}

func (suite *TestSuiteEnv) TestDeleteTransaction() {
	transaction := suite.createTestIncome(2500)

	recorder := test.Request(suite.T(), suite.co, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
