// Package models defines the persisted data model.
//
// A whole budget is one Document, saved as a single JSON file. All
// amounts are decimals, all months are YYYY-MM strings in the file.
package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are JSON numbers in the document and in API responses,
	// not quoted strings. Reading still accepts both.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType discriminates income from expenses.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the transaction type is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Category is a spending category.
//
// Categories are never deleted, only deactivated, since monthly budgets
// reference them by ID.
type Category struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	ParentCategory string     `json:"parentCategory,omitempty"` // optional grouping label
	CreatedDate    types.Date `json:"createdDate"`
	IsActive       bool       `json:"isActive"`
}

// Transaction is a single dated income or expense.
//
// It is owned by the monthly budget of the month its date falls into.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        types.Date      `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	CategoryID  *uuid.UUID      `json:"categoryId,omitempty"` // required for expenses

	// Category name found in the categoryId field of old documents.
	// Migrate resolves it to an ID and clears it.
	legacyCategoryName string
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Old app versions wrote the category *name* into categoryId. Those
// documents still have to load, so a value that is not a UUID is kept
// aside for Migrate instead of failing the parse.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type embedded Transaction
	aux := struct {
		*embedded
		CategoryID string `json:"categoryId"`
	}{embedded: (*embedded)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.CategoryID == "" {
		return nil
	}

	if id, err := uuid.Parse(aux.CategoryID); err == nil {
		t.CategoryID = &id
	} else {
		t.legacyCategoryName = aux.CategoryID
	}

	return nil
}

// Allocation is the amount budgeted for one category in one month.
type Allocation struct {
	Assigned decimal.Decimal `json:"assigned"`
}

// MonthBudget holds the allocations and transactions of one month.
type MonthBudget struct {
	Categories   map[string]Allocation `json:"categories"` // keyed by category ID
	Transactions []Transaction         `json:"transactions"`
}

// Payment is one recorded payment towards a debt.
type Payment struct {
	Date   types.Date      `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Debt is a tracked liability.
type Debt struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	OriginalBalance decimal.Decimal `json:"originalBalance"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	MinPayment      decimal.Decimal `json:"minPayment"`
	PaymentHistory  []Payment       `json:"paymentHistory"`
}

// Goal is a savings target with a due month.
type Goal struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	DueDate             types.Month     `json:"dueDate"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
}

// Document is the complete persisted state of a budget.
type Document struct {
	MonthlyBudgets map[types.Month]*MonthBudget `json:"monthlyBudgets"`
	DebtList       []Debt                       `json:"debtList"`
	Goals          []Goal                       `json:"goals"`
	Categories     map[string]Category          `json:"categories"` // keyed by category ID
	ReadyToAssign  decimal.Decimal              `json:"readyToAssign"`
}

// DefaultDocument returns an empty Document with all collections
// initialized. This is also what loading a non-existent file yields.
func DefaultDocument() *Document {
	return &Document{
		MonthlyBudgets: make(map[types.Month]*MonthBudget),
		DebtList:       make([]Debt, 0),
		Goals:          make([]Goal, 0),
		Categories:     make(map[string]Category),
		ReadyToAssign:  decimal.Zero,
	}
}

// NewMonthBudget returns an empty month budget.
func NewMonthBudget() *MonthBudget {
	return &MonthBudget{
		Categories:   make(map[string]Allocation),
		Transactions: make([]Transaction, 0),
	}
}
