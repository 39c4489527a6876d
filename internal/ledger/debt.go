package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// SortMethod is a debt payoff ordering.
type SortMethod string

const (
	// SortSnowball orders debts by smallest current balance first.
	SortSnowball SortMethod = "snowball"
	// SortAvalanche orders debts by highest interest rate first.
	SortAvalanche SortMethod = "avalanche"
)

// Valid reports whether the sort method is known.
func (s SortMethod) Valid() bool {
	return s == SortSnowball || s == SortAvalanche
}

// AddDebt starts tracking a debt.
func (l *Ledger) AddDebt(name string, originalBalance, currentBalance, interestRate, minPayment decimal.Decimal) (models.Debt, error) {
	if name == "" {
		return models.Debt{}, ErrDebtNameEmpty
	}

	if !originalBalance.IsPositive() || currentBalance.IsNegative() {
		return models.Debt{}, ErrDebtBalanceInvalid
	}

	if interestRate.IsNegative() || minPayment.IsNegative() {
		return models.Debt{}, ErrDebtRateInvalid
	}

	debt := models.Debt{
		ID:              uuid.New(),
		Name:            name,
		OriginalBalance: originalBalance,
		CurrentBalance:  currentBalance,
		InterestRate:    interestRate,
		MinPayment:      minPayment,
		PaymentHistory:  make([]models.Payment, 0),
	}
	l.doc.DebtList = append(l.doc.DebtList, debt)

	return debt, nil
}

// findDebt locates a debt by ID.
func (l *Ledger) findDebt(id uuid.UUID) (int, bool) {
	for i, debt := range l.doc.DebtList {
		if debt.ID == id {
			return i, true
		}
	}

	return 0, false
}

// Debt returns the debt with the passed ID.
func (l *Ledger) Debt(id uuid.UUID) (models.Debt, error) {
	i, ok := l.findDebt(id)
	if !ok {
		return models.Debt{}, ErrDebtNotFound
	}

	return l.doc.DebtList[i], nil
}

// RecordDebtPayment pays an amount towards a debt from the pool.
//
// The full amount is taken out of the pool and recorded in the payment
// history even when it exceeds the remaining balance; the balance is
// clamped at zero and the excess is not returned. A linked expense is
// booked in the current month under the reserved debt payment
// category.
func (l *Ledger) RecordDebtPayment(id uuid.UUID, amount decimal.Decimal) (models.Debt, error) {
	if !amount.IsPositive() {
		return models.Debt{}, ErrAmountNotPositive
	}

	i, ok := l.findDebt(id)
	if !ok {
		return models.Debt{}, ErrDebtNotFound
	}

	if err := l.debitPool(amount); err != nil {
		return models.Debt{}, err
	}

	debt := l.doc.DebtList[i]
	debt.CurrentBalance = debt.CurrentBalance.Sub(amount)
	if debt.CurrentBalance.IsNegative() {
		debt.CurrentBalance = decimal.Zero
	}

	today := types.DateOf(l.now())
	debt.PaymentHistory = append(debt.PaymentHistory, models.Payment{Date: today, Amount: amount})
	l.doc.DebtList[i] = debt

	categoryID := l.debtPaymentsCategory()
	budget := l.month(l.CurrentMonth())
	budget.Transactions = append(budget.Transactions, models.Transaction{
		ID:          uuid.New(),
		Date:        today,
		Amount:      amount,
		Description: "Debt payment: " + debt.Name,
		Type:        models.TransactionTypeExpense,
		CategoryID:  &categoryID,
	})

	return debt, nil
}

// debtPaymentsCategory returns the reserved debt payment category,
// creating it on first use. The ID is cached so regular operation
// never joins on the name.
func (l *Ledger) debtPaymentsCategory() uuid.UUID {
	if l.debtCategoryID != uuid.Nil {
		if _, ok := l.category(l.debtCategoryID); ok {
			return l.debtCategoryID
		}
	}

	category := models.Category{
		ID:          uuid.New(),
		Name:        DebtPaymentsCategoryName,
		CreatedDate: types.DateOf(l.now()),
		IsActive:    true,
	}
	l.doc.Categories[category.ID.String()] = category
	l.debtCategoryID = category.ID

	return category.ID
}

// Debts returns the debts ordered by the payoff method: snowball is
// ascending by current balance, avalanche descending by interest rate.
// An empty method keeps the insertion order. The ledger itself is not
// changed.
func (l *Ledger) Debts(method SortMethod) []models.Debt {
	debts := make([]models.Debt, len(l.doc.DebtList))
	copy(debts, l.doc.DebtList)

	switch method {
	case SortSnowball:
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].CurrentBalance.LessThan(debts[j].CurrentBalance)
		})
	case SortAvalanche:
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].InterestRate.GreaterThan(debts[j].InterestRate)
		})
	}

	return debts
}

// DeleteDebt removes a debt and its payment history. Payments already
// made are sunk, nothing is refunded to the pool.
func (l *Ledger) DeleteDebt(id uuid.UUID) error {
	i, ok := l.findDebt(id)
	if !ok {
		return ErrDebtNotFound
	}

	l.doc.DebtList = slices.Delete(l.doc.DebtList, i, i+1)
	return nil
}
