package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// TransactionInput is the user-editable part of a transaction.
type TransactionInput struct {
	Date        types.Date
	Amount      decimal.Decimal
	Description string
	Type        models.TransactionType
	CategoryID  *uuid.UUID
}

// validate checks the input against the transaction rules. Income
// never carries a category, expenses must reference an existing one.
func (l *Ledger) validate(input TransactionInput) error {
	if input.Date.IsZero() {
		return ErrTransactionDateNotSet
	}

	if !input.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !input.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if input.Type == models.TransactionTypeExpense {
		if input.CategoryID == nil || *input.CategoryID == uuid.Nil {
			return ErrExpenseWithoutCategory
		}

		if _, ok := l.category(*input.CategoryID); !ok {
			return ErrExpenseCategoryUnknown
		}
	}

	return nil
}

// record builds the stored transaction for an input.
func record(id uuid.UUID, input TransactionInput) models.Transaction {
	transaction := models.Transaction{
		ID:          id,
		Date:        input.Date,
		Amount:      input.Amount,
		Description: input.Description,
		Type:        input.Type,
	}

	// Income bypasses the allocation mechanism entirely, it is never
	// tied to a category.
	if input.Type == models.TransactionTypeExpense {
		categoryID := *input.CategoryID
		transaction.CategoryID = &categoryID
	}

	return transaction
}

// isDuplicate reports whether the month already holds a transaction
// with the same date, amount and description.
func isDuplicate(budget *models.MonthBudget, input TransactionInput) bool {
	for _, transaction := range budget.Transactions {
		if transaction.Date.Equal(input.Date) &&
			transaction.Amount.Equal(input.Amount) &&
			transaction.Description == input.Description {
			return true
		}
	}

	return false
}

// AddTransaction inserts a transaction into the month its date falls
// into.
//
// A transaction that matches an existing one in date, amount and
// description is answered with ErrDuplicateTransaction and not
// inserted, unless confirmDuplicate is set. Income credits the pool.
func (l *Ledger) AddTransaction(input TransactionInput, confirmDuplicate bool) (models.Transaction, error) {
	if err := l.validate(input); err != nil {
		return models.Transaction{}, err
	}

	budget := l.month(input.Date.Month())
	if !confirmDuplicate && isDuplicate(budget, input) {
		return models.Transaction{}, ErrDuplicateTransaction
	}

	transaction := record(uuid.New(), input)
	budget.Transactions = append(budget.Transactions, transaction)

	if transaction.Type == models.TransactionTypeIncome {
		l.creditPool(transaction.Amount)
	}

	return transaction, nil
}

// findTransaction locates a transaction by ID across all months.
func (l *Ledger) findTransaction(id uuid.UUID) (types.Month, int, bool) {
	for month, budget := range l.doc.MonthlyBudgets {
		for i, transaction := range budget.Transactions {
			if transaction.ID == id {
				return month, i, true
			}
		}
	}

	return types.Month{}, 0, false
}

// Transaction returns the transaction with the passed ID.
func (l *Ledger) Transaction(id uuid.UUID) (models.Transaction, error) {
	month, i, ok := l.findTransaction(id)
	if !ok {
		return models.Transaction{}, ErrTransactionNotFound
	}

	return l.doc.MonthlyBudgets[month].Transactions[i], nil
}

// EditTransaction replaces a transaction's data, keeping its ID.
//
// When the new date falls into a different month, the transaction
// moves to that month's ledger. The pool is adjusted by reversing the
// old income effect and applying the new one; expenses never touch
// the pool.
func (l *Ledger) EditTransaction(id uuid.UUID, input TransactionInput) (models.Transaction, error) {
	if err := l.validate(input); err != nil {
		return models.Transaction{}, err
	}

	oldMonth, i, ok := l.findTransaction(id)
	if !ok {
		return models.Transaction{}, ErrTransactionNotFound
	}

	old := l.doc.MonthlyBudgets[oldMonth].Transactions[i]
	if old.Type == models.TransactionTypeIncome {
		l.doc.ReadyToAssign = l.doc.ReadyToAssign.Sub(old.Amount)
	}
	if input.Type == models.TransactionTypeIncome {
		l.creditPool(input.Amount)
	}

	transaction := record(id, input)

	newMonth := input.Date.Month()
	if newMonth.Equal(oldMonth) {
		l.doc.MonthlyBudgets[oldMonth].Transactions[i] = transaction
		return transaction, nil
	}

	budget := l.doc.MonthlyBudgets[oldMonth]
	budget.Transactions = slices.Delete(budget.Transactions, i, i+1)
	l.month(newMonth).Transactions = append(l.month(newMonth).Transactions, transaction)

	return transaction, nil
}

// DeleteTransaction removes a transaction. Deleting an income
// transaction takes its amount back out of the pool, deleting an
// expense never touches the pool.
func (l *Ledger) DeleteTransaction(id uuid.UUID) error {
	month, i, ok := l.findTransaction(id)
	if !ok {
		return ErrTransactionNotFound
	}

	budget := l.doc.MonthlyBudgets[month]
	transaction := budget.Transactions[i]
	budget.Transactions = slices.Delete(budget.Transactions, i, i+1)

	if transaction.Type == models.TransactionTypeIncome {
		l.doc.ReadyToAssign = l.doc.ReadyToAssign.Sub(transaction.Amount)
	}

	return nil
}

// Transactions returns all transactions across all months, newest
// date first.
func (l *Ledger) Transactions() []models.Transaction {
	transactions := make([]models.Transaction, 0)
	for _, budget := range l.doc.MonthlyBudgets {
		transactions = append(transactions, budget.Transactions...)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[j].Date.String() < transactions[i].Date.String()
	})

	return transactions
}
