package v1

import (
	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"

	"github.com/google/uuid"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date        types.Date             `json:"date" example:"2026-08-14"`                                  // Date of the transaction
	Amount      decimal.Decimal        `json:"amount" example:"42.17"`                                     // Amount, always positive
	Description string                 `json:"description" example:"Weekly shopping"`                      // Free-text note
	Type        models.TransactionType `json:"type" example:"expense"`                                     // income or expense
	CategoryID  *uuid.UUID             `json:"categoryId" example:"4fbe853a-f1ea-47e8-8524-e008db2b0e4e"` // Category for expenses, unset for income
}

func (editable TransactionEditable) input() ledger.TransactionInput {
	return ledger.TransactionInput{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Description: editable.Description,
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
	}
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`  // Data for the transaction
	Error *string             `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []models.Transaction `json:"data"`       // List of transactions
	Error      *string              `json:"error"`      // The error, if any occurred
	Pagination *Pagination          `json:"pagination"` // Pagination information
}

// TransactionQueryFilter contains the query parameters for the
// transaction list endpoint.
type TransactionQueryFilter struct {
	Month       string `form:"month"`       // YYYY-MM, only transactions of this month
	CategoryID  string `form:"category"`    // Only expenses of this category
	Type        string `form:"type"`        // income or expense
	Description string `form:"description"` // Supports * globbing
	Offset      uint   `form:"offset"`      // The offset of the first transaction returned. Defaults to 0.
	Limit       int    `form:"limit"`       // Maximum number of transactions to return. Defaults to 50.
}
