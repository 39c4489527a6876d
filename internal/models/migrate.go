package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
)

// Migrate normalizes a freshly loaded document in place.
//
// Documents written by old app versions keyed categories and monthly
// allocations by category *name* instead of ID. Migrate rewrites all
// such keys to IDs once at load time, creating categories on first
// reference, so that no name-based lookups survive into regular
// operations. It also initializes nil collections so callers never
// have to check for them.
func Migrate(doc *Document, now time.Time) {
	if doc.MonthlyBudgets == nil {
		doc.MonthlyBudgets = make(map[types.Month]*MonthBudget)
	}
	if doc.Categories == nil {
		doc.Categories = make(map[string]Category)
	}
	if doc.DebtList == nil {
		doc.DebtList = make([]Debt, 0)
	}
	if doc.Goals == nil {
		doc.Goals = make([]Goal, 0)
	}

	// Rewrite name-keyed category entries to ID keys, assigning IDs to
	// categories that never had one.
	for key, category := range doc.Categories {
		if category.ID == uuid.Nil {
			category.ID = uuid.New()
		}
		if category.Name == "" {
			category.Name = key
		}
		if category.CreatedDate.IsZero() {
			category.CreatedDate = types.DateOf(now)
		}

		if key != category.ID.String() {
			delete(doc.Categories, key)
		}
		doc.Categories[category.ID.String()] = category
	}

	// Index active and inactive categories by lower-cased name for the
	// migration of allocation keys. This index is discarded afterwards.
	byName := make(map[string]Category, len(doc.Categories))
	for _, category := range doc.Categories {
		byName[strings.ToLower(category.Name)] = category
	}

	for _, budget := range doc.MonthlyBudgets {
		if budget.Categories == nil {
			budget.Categories = make(map[string]Allocation)
		}
		if budget.Transactions == nil {
			budget.Transactions = make([]Transaction, 0)
		}

		for key, allocation := range budget.Categories {
			if _, ok := doc.Categories[key]; ok {
				continue
			}

			// Legacy name key. Map it to the existing category of that
			// name or create one, then re-key the allocation.
			category := categoryNamed(doc, byName, key, now)
			delete(budget.Categories, key)
			budget.Categories[category.ID.String()] = allocation
		}

		for i, transaction := range budget.Transactions {
			if transaction.ID == uuid.Nil {
				budget.Transactions[i].ID = uuid.New()
			}

			// Legacy categoryId values that were names are resolved
			// the same way as allocation keys.
			if name := transaction.legacyCategoryName; name != "" {
				id := categoryNamed(doc, byName, name, now).ID
				budget.Transactions[i].CategoryID = &id
				budget.Transactions[i].legacyCategoryName = ""
			}
		}
	}

	for i, debt := range doc.DebtList {
		if debt.PaymentHistory == nil {
			doc.DebtList[i].PaymentHistory = make([]Payment, 0)
		}
	}
}

// categoryNamed returns the category with the passed name, creating
// it when no active or inactive category matches case-insensitively.
func categoryNamed(doc *Document, byName map[string]Category, name string, now time.Time) Category {
	category, ok := byName[strings.ToLower(name)]
	if !ok {
		category = Category{
			ID:          uuid.New(),
			Name:        name,
			CreatedDate: types.DateOf(now),
			IsActive:    true,
		}
		doc.Categories[category.ID.String()] = category
		byName[strings.ToLower(name)] = category
	}

	return category
}
