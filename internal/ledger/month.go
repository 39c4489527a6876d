package ledger

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// month returns the budget for a month, creating an empty one on first
// access. This is the only place where months come into existence.
func (l *Ledger) month(m types.Month) *models.MonthBudget {
	if budget, ok := l.doc.MonthlyBudgets[m]; ok {
		return budget
	}

	budget := models.NewMonthBudget()
	l.doc.MonthlyBudgets[m] = budget
	return budget
}

// SetAllocation budgets an amount for a category in a month.
//
// The difference to the previous amount is taken from the pool. When
// the difference exceeds the money ready to assign, the call is
// rejected and neither the pool nor the allocation change.
func (l *Ledger) SetAllocation(m types.Month, categoryID uuid.UUID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAllocationNegative
	}

	if _, ok := l.category(categoryID); !ok {
		return ErrCategoryNotFound
	}

	budget := l.month(m)
	delta := amount.Sub(budget.Categories[categoryID.String()].Assigned)

	if err := l.debitPool(delta); err != nil {
		return err
	}

	budget.Categories[categoryID.String()] = models.Allocation{Assigned: amount}
	return nil
}

// QuickBudget tops a category up to its previous month's budget.
//
// Only the shortfall is taken from the pool. The topped-up difference
// is returned. When the category had no allocation in the previous
// month the call fails, when the current budget already covers the
// previous one it reports ErrAlreadyBudgeted without changing state.
func (l *Ledger) QuickBudget(m types.Month, categoryID uuid.UUID) (decimal.Decimal, error) {
	if _, ok := l.category(categoryID); !ok {
		return decimal.Zero, ErrCategoryNotFound
	}

	previous, ok := l.doc.MonthlyBudgets[m.AddDate(0, -1)]
	if !ok {
		return decimal.Zero, ErrNoPreviousAllocation
	}
	target, ok := previous.Categories[categoryID.String()]
	if !ok {
		return decimal.Zero, ErrNoPreviousAllocation
	}

	budget := l.month(m)
	delta := target.Assigned.Sub(budget.Categories[categoryID.String()].Assigned)
	if !delta.IsPositive() {
		return decimal.Zero, ErrAlreadyBudgeted
	}

	if err := l.debitPool(delta); err != nil {
		return decimal.Zero, err
	}

	budget.Categories[categoryID.String()] = models.Allocation{Assigned: target.Assigned}
	return delta, nil
}

// CopyCategoriesForward creates a zero allocation in the month after
// the passed one for every active category that has none yet. Existing
// allocations are never overwritten. It returns how many entries were
// created.
func (l *Ledger) CopyCategoriesForward(from types.Month) int {
	budget := l.month(from.AddDate(0, 1))

	var copied int
	for _, category := range l.doc.Categories {
		if !category.IsActive {
			continue
		}

		if _, ok := budget.Categories[category.ID.String()]; ok {
			continue
		}

		budget.Categories[category.ID.String()] = models.Allocation{Assigned: decimal.Zero}
		copied++
	}

	return copied
}

// CategoryMonth holds the derived figures of one category in one month.
type CategoryMonth struct {
	Category  models.Category
	Budgeted  decimal.Decimal
	Activity  decimal.Decimal
	Available decimal.Decimal
}

// MonthView is the derived overview of one month.
type MonthView struct {
	Month         types.Month
	Income        decimal.Decimal
	Budgeted      decimal.Decimal
	Activity      decimal.Decimal
	Available     decimal.Decimal
	ReadyToAssign decimal.Decimal
	Categories    []CategoryMonth
}

// MonthView computes the overview for a month.
//
// Activity and available are always derived from the stored
// allocations and transactions, so available == budgeted - activity
// holds for every category after every mutation. Available may go
// negative for overspent categories, that never touches the pool.
func (l *Ledger) MonthView(m types.Month) MonthView {
	budget := l.month(m)

	activity := make(map[string]decimal.Decimal)
	income := decimal.Zero
	for _, transaction := range budget.Transactions {
		switch transaction.Type {
		case models.TransactionTypeIncome:
			income = income.Add(transaction.Amount)
		case models.TransactionTypeExpense:
			if transaction.CategoryID != nil {
				key := transaction.CategoryID.String()
				activity[key] = activity[key].Add(transaction.Amount)
			}
		}
	}

	view := MonthView{
		Month:         m,
		Income:        income,
		Budgeted:      decimal.Zero,
		Activity:      decimal.Zero,
		ReadyToAssign: l.doc.ReadyToAssign,
		Categories:    make([]CategoryMonth, 0),
	}

	for _, category := range l.doc.Categories {
		if !category.IsActive {
			continue
		}

		budgeted := budget.Categories[category.ID.String()].Assigned
		spent := activity[category.ID.String()]

		view.Budgeted = view.Budgeted.Add(budgeted)
		view.Activity = view.Activity.Add(spent)
		view.Categories = append(view.Categories, CategoryMonth{
			Category:  category,
			Budgeted:  budgeted,
			Activity:  spent,
			Available: budgeted.Sub(spent),
		})
	}

	sort.Slice(view.Categories, func(i, j int) bool {
		return strings.ToLower(view.Categories[i].Category.Name) < strings.ToLower(view.Categories[j].Category.Name)
	})

	view.Available = view.Budgeted.Sub(view.Activity)
	return view
}
