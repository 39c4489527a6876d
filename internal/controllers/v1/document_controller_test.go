package v1_test

import (
	"net/http"
	"os"

	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/test"
)

func (suite *TestSuiteEnv) TestExportDocument() {
	suite.createTestIncome(2500)
	suite.createTestCategory("Groceries")

	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/document", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var doc models.Document
	test.DecodeResponse(suite.T(), &recorder, &doc)
	suite.Assert().Len(doc.Categories, 1)
	suite.Assert().True(doc.ReadyToAssign.IsPositive())
}

func (suite *TestSuiteEnv) TestImportDocumentReplacesState() {
	suite.createTestCategory("Groceries")

	// Import a legacy document with a name-keyed category.
	body := `{
		"categories": { "Rent": { "name": "Rent", "isActive": true } },
		"readyToAssign": "50"
	}`
	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/document", body)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/categories", "")
	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &categories)
	suite.Require().Len(categories.Data, 1)
	suite.Assert().Equal("Rent", categories.Data[0].Name)
}

func (suite *TestSuiteEnv) TestExportImportRoundTrip() {
	suite.createTestIncome(2500)
	suite.createTestCategory("Groceries")

	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/document", "")
	exported := recorder.Body.String()

	recorder = test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/document", exported)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/document", "")
	suite.Assert().JSONEq(exported, recorder.Body.String())
}

func (suite *TestSuiteEnv) TestSetFile() {
	file := test.TmpFile(suite.T())

	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/document/file", v1.FileEditable{Path: file})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.StorageResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(file, response.Data.File)
	suite.Assert().Nil(response.Data.LastError)
}

func (suite *TestSuiteEnv) TestSetFileUnreadableKeepsTarget() {
	previous := suite.gateway.File()

	corrupt := test.TmpFile(suite.T())
	suite.Require().NoError(os.WriteFile(corrupt, []byte("{ not json"), 0o600))

	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/document/file", v1.FileEditable{Path: corrupt})
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &recorder)

	// The next mutation saves to the previous target, not to the file
	// that failed to load.
	suite.createTestCategory("Groceries")

	data, err := os.ReadFile(corrupt)
	suite.Require().NoError(err)
	suite.Assert().Equal("{ not json", string(data))

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/storage", "")
	var response v1.StorageResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(previous, response.Data.File)
	suite.Assert().Nil(response.Data.LastError)
}

func (suite *TestSuiteEnv) TestSetFileEmptyPath() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "http://example.com/v1/document/file", v1.FileEditable{})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteEnv) TestGetStorage() {
	suite.createTestCategory("Groceries")

	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/storage", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.StorageResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(suite.gateway.File(), response.Data.File)
	suite.Assert().Nil(response.Data.LastError)
}

func (suite *TestSuiteEnv) TestStorageSurfacesWriteFailure() {
	// No file selected makes every save fail. The mutation itself
	// still goes through.
	suite.gateway.SetFile("")

	suite.createTestCategory("Groceries")

	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/storage", "")
	var response v1.StorageResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data.LastError)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/categories", "")
	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &categories)
	suite.Assert().Len(categories.Data, 1)
}

func (suite *TestSuiteEnv) TestCleanup() {
	suite.createTestIncome(2500)
	suite.createTestCategory("Groceries")

	recorder := test.Request(suite.T(), suite.co, http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/categories", "")
	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &categories)
	suite.Assert().Empty(categories.Data)
}

func (suite *TestSuiteEnv) TestCleanupWrongConfirmation() {
	suite.createTestCategory("Groceries")

	recorder := test.Request(suite.T(), suite.co, http.MethodDelete, "http://example.com/v1?confirm=please", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodDelete, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
