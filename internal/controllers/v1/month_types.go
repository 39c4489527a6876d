package v1

import (
	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategoryMonth is one category's figures in a month overview.
type CategoryMonth struct {
	Category           models.Category `json:"category"`
	Budgeted           decimal.Decimal `json:"budgeted" example:"400"`
	Activity           decimal.Decimal `json:"activity" example:"180.5"`
	Available          decimal.Decimal `json:"available" example:"219.5"`
	AvailableFormatted string          `json:"availableFormatted" example:"$ 219.50"`
}

// Month is the aggregated overview of one budget month.
type Month struct {
	Month                  types.Month     `json:"month" example:"2026-08"`
	Income                 decimal.Decimal `json:"income" example:"3000"`
	Budgeted               decimal.Decimal `json:"budgeted" example:"2100"`
	Activity               decimal.Decimal `json:"activity" example:"1430.17"`
	Available              decimal.Decimal `json:"available" example:"669.83"`
	ReadyToAssign          decimal.Decimal `json:"readyToAssign" example:"900"`
	ReadyToAssignFormatted string          `json:"readyToAssignFormatted" example:"$ 900.00"`
	Categories             []CategoryMonth `json:"categories"`
}

type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

func (co *Controller) newMonth(view ledger.MonthView) Month {
	month := Month{
		Month:                  view.Month,
		Income:                 view.Income,
		Budgeted:               view.Budgeted,
		Activity:               view.Activity,
		Available:              view.Available,
		ReadyToAssign:          view.ReadyToAssign,
		ReadyToAssignFormatted: types.FormatAmount(view.ReadyToAssign, co.currency),
		Categories:             make([]CategoryMonth, 0, len(view.Categories)),
	}

	for _, category := range view.Categories {
		month.Categories = append(month.Categories, CategoryMonth{
			Category:           category.Category,
			Budgeted:           category.Budgeted,
			Activity:           category.Activity,
			Available:          category.Available,
			AvailableFormatted: types.FormatAmount(category.Available, co.currency),
		})
	}

	return month
}

// AllocationEditable represents all user configurable parameters
type AllocationEditable struct {
	Assigned decimal.Decimal `json:"assigned" example:"400"` // Amount to budget for the category in this month
}

type AllocationResponse struct {
	Data  *models.Allocation `json:"data"`  // Data for the allocation
	Error *string            `json:"error"` // The error, if any occurred
}

// QuickBudgetResult reports how much a quick-budget call topped up.
type QuickBudgetResult struct {
	Budgeted decimal.Decimal `json:"budgeted" example:"150"` // Amount moved from the pool to the category
}

type QuickBudgetResponse struct {
	Data  *QuickBudgetResult `json:"data"`
	Error *string            `json:"error"`
}

// CopyForwardResult reports how many categories a copy-forward created.
type CopyForwardResult struct {
	Copied int `json:"copied" example:"7"` // Number of allocation entries created in the following month
}

type CopyForwardResponse struct {
	Data  *CopyForwardResult `json:"data"`
	Error *string            `json:"error"`
}
