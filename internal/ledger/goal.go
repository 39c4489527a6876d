package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// AddGoal creates a savings goal with a due month.
//
// The target amount is spread evenly over every month from the current
// month through the due month, both inclusive. A backing category is
// created under the reserved goals parent and its allocation for each
// of these months is set to the monthly contribution directly: goal
// contributions are pre-funded and deliberately bypass the pool, they
// neither check nor decrement the money ready to assign.
func (l *Ledger) AddGoal(name, description string, dueDate types.Month, totalAmount decimal.Decimal) (models.Goal, error) {
	if strings.TrimSpace(name) == "" {
		return models.Goal{}, ErrGoalNameEmpty
	}

	if !totalAmount.IsPositive() {
		return models.Goal{}, ErrGoalAmountNotPositive
	}

	current := l.CurrentMonth()
	if !dueDate.After(current) {
		return models.Goal{}, ErrGoalDueNotInFuture
	}

	// Both the current and the due month get a contribution.
	months := current.MonthsUntil(dueDate) + 1
	contribution := totalAmount.Div(decimal.NewFromInt(int64(months))).Round(2)

	category, err := l.AddCategory(name, GoalsParentLabel)
	if err != nil {
		return models.Goal{}, err
	}

	for i := 0; i < months; i++ {
		budget := l.month(current.AddDate(0, i))
		budget.Categories[category.ID.String()] = models.Allocation{Assigned: contribution}
	}

	goal := models.Goal{
		ID:                  uuid.New(),
		Name:                strings.TrimSpace(name),
		Description:         description,
		DueDate:             dueDate,
		TotalAmount:         totalAmount,
		MonthlyContribution: contribution,
	}
	l.doc.Goals = append(l.doc.Goals, goal)
	l.goalCategories[goal.ID] = category.ID

	return goal, nil
}

// findGoal locates a goal by ID.
func (l *Ledger) findGoal(id uuid.UUID) (int, bool) {
	for i, goal := range l.doc.Goals {
		if goal.ID == id {
			return i, true
		}
	}

	return 0, false
}

// Goal returns the goal with the passed ID.
func (l *Ledger) Goal(id uuid.UUID) (models.Goal, error) {
	i, ok := l.findGoal(id)
	if !ok {
		return models.Goal{}, ErrGoalNotFound
	}

	return l.doc.Goals[i], nil
}

// Goals returns all goals in insertion order.
func (l *Ledger) Goals() []models.Goal {
	goals := make([]models.Goal, len(l.doc.Goals))
	copy(goals, l.doc.Goals)
	return goals
}

// GoalProgress returns how much of the goal's target has been budgeted
// into its backing category across all months, in percent.
func (l *Ledger) GoalProgress(id uuid.UUID) (decimal.Decimal, error) {
	i, ok := l.findGoal(id)
	if !ok {
		return decimal.Zero, ErrGoalNotFound
	}
	goal := l.doc.Goals[i]

	categoryID, ok := l.goalCategories[id]
	if !ok {
		// The backing category was created by an old version and could
		// not be resolved at load time.
		return decimal.Zero, nil
	}

	saved := decimal.Zero
	for _, budget := range l.doc.MonthlyBudgets {
		if allocation, ok := budget.Categories[categoryID.String()]; ok {
			saved = saved.Add(allocation.Assigned)
		}
	}

	return saved.Div(goal.TotalAmount).Mul(decimal.NewFromInt(100)).Round(2), nil
}

// DeleteGoal removes the goal record only. The backing category and
// all its allocations stay untouched, the money remains budgeted.
func (l *Ledger) DeleteGoal(id uuid.UUID) error {
	i, ok := l.findGoal(id)
	if !ok {
		return ErrGoalNotFound
	}

	l.doc.Goals = slices.Delete(l.doc.Goals, i, i+1)
	delete(l.goalCategories, id)

	return nil
}
