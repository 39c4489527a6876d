package v1

import (
	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name           string `json:"name" example:"Groceries"`                             // Name of the category
	ParentCategory string `json:"parentCategory" example:"Living Expenses" default:""` // Optional parent grouping label
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`  // Data for the Category
	Error *string          `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`  // List of Categories
	Error *string           `json:"error"` // The error, if any occurred
}

// CategoryGroup is a parent label with its categories.
type CategoryGroup struct {
	Parent     string            `json:"parent" example:"Living Expenses"`
	Categories []models.Category `json:"categories"`
}

type CategoryGroupListResponse struct {
	Data  []CategoryGroup `json:"data"`  // Active categories grouped by parent label
	Error *string         `json:"error"` // The error, if any occurred
}

func newCategoryGroups(groups []ledger.CategoryGroup) []CategoryGroup {
	data := make([]CategoryGroup, 0, len(groups))
	for _, group := range groups {
		data = append(data, CategoryGroup{Parent: group.Parent, Categories: group.Categories})
	}

	return data
}

// CategoryDeactivation reports the outcome of a category soft-delete.
type CategoryDeactivation struct {
	Refunded decimal.Decimal `json:"refunded" example:"120"` // Budgeted money returned to the pool
}

type CategoryDeactivationResponse struct {
	Data  *CategoryDeactivation `json:"data"`
	Error *string               `json:"error"`
}
