package v1

import (
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	Name            string          `json:"name" example:"Car loan"`        // Name of the debt
	OriginalBalance decimal.Decimal `json:"originalBalance" example:"8000"` // Balance when tracking started
	CurrentBalance  decimal.Decimal `json:"currentBalance" example:"6200"`  // Remaining balance
	InterestRate    decimal.Decimal `json:"interestRate" example:"4.9"`     // Annual interest rate in percent
	MinPayment      decimal.Decimal `json:"minPayment" example:"220"`       // Minimum monthly payment
}

type DebtResponse struct {
	Data  *models.Debt `json:"data"`  // Data for the debt
	Error *string      `json:"error"` // The error, if any occurred
}

type DebtListResponse struct {
	Data  []models.Debt `json:"data"`  // List of debts
	Error *string       `json:"error"` // The error, if any occurred
}

// PaymentEditable represents all user configurable parameters
type PaymentEditable struct {
	Amount decimal.Decimal `json:"amount" example:"250"` // Amount to pay towards the debt
}
