package v1

import (
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Name        string          `json:"name" example:"Vacation"`                // Name of the goal
	Description string          `json:"description" example:"Two weeks Italy"`  // Free-text note
	DueDate     types.Month     `json:"dueDate" example:"2027-07"`              // Month the goal should be fully funded
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1200"`             // Target amount
}

// Goal is a goal record together with its funding progress.
type Goal struct {
	models.Goal
	Progress decimal.Decimal `json:"progress" example:"25"` // Budgeted share of the target in percent
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`  // Data for the goal
	Error *string `json:"error"` // The error, if any occurred
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`  // List of goals
	Error *string `json:"error"` // The error, if any occurred
}
