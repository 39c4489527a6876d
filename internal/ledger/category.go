package ledger

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// AddCategory creates a new active category.
//
// The name must not be empty and must not collide with another active
// category, compared case-insensitively. Inactive categories do not
// block their name from being reused.
func (l *Ledger) AddCategory(name, parentLabel string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrCategoryNameEmpty
	}

	for _, category := range l.doc.Categories {
		if category.IsActive && strings.EqualFold(category.Name, name) {
			return models.Category{}, ErrCategoryNameTaken
		}
	}

	category := models.Category{
		ID:             uuid.New(),
		Name:           name,
		ParentCategory: strings.TrimSpace(parentLabel),
		CreatedDate:    types.DateOf(l.now()),
		IsActive:       true,
	}
	l.doc.Categories[category.ID.String()] = category

	return category, nil
}

// Category returns the category with the passed ID, active or not.
func (l *Ledger) Category(id uuid.UUID) (models.Category, error) {
	category, ok := l.category(id)
	if !ok {
		return models.Category{}, ErrCategoryNotFound
	}

	return category, nil
}

// DeactivateCategory soft-deletes a category.
//
// The budgeted money of the category is refunded to the pool. The
// allocation entries themselves stay in the monthly ledgers to keep
// history intact, they are inert once the category is inactive.
// Deactivating an already inactive category is a no-op that refunds
// nothing.
func (l *Ledger) DeactivateCategory(id uuid.UUID) (decimal.Decimal, error) {
	category, ok := l.category(id)
	if !ok {
		return decimal.Zero, ErrCategoryNotFound
	}

	if !category.IsActive {
		return decimal.Zero, nil
	}

	refund := decimal.Zero
	for _, budget := range l.doc.MonthlyBudgets {
		if allocation, ok := budget.Categories[id.String()]; ok {
			refund = refund.Add(allocation.Assigned)
		}
	}
	l.creditPool(refund)

	category.IsActive = false
	l.doc.Categories[id.String()] = category

	return refund, nil
}

// Categories returns all active categories sorted by name.
func (l *Ledger) Categories() []models.Category {
	categories := make([]models.Category, 0)
	for _, category := range l.doc.Categories {
		if category.IsActive {
			categories = append(categories, category)
		}
	}

	sort.Slice(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	return categories
}

// CategoryGroup is a parent label with its active categories.
type CategoryGroup struct {
	Parent     string
	Categories []models.Category
}

// CategoriesByParent returns all active categories grouped by their
// parent label. Groups are sorted by label, the ungrouped bucket comes
// last under UngroupedLabel.
func (l *Ledger) CategoriesByParent() []CategoryGroup {
	byParent := make(map[string][]models.Category)
	for _, category := range l.Categories() {
		label := category.ParentCategory
		if label == "" {
			label = UngroupedLabel
		}
		byParent[label] = append(byParent[label], category)
	}

	labels := make([]string, 0, len(byParent))
	for label := range byParent {
		if label != UngroupedLabel {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	if _, ok := byParent[UngroupedLabel]; ok {
		labels = append(labels, UngroupedLabel)
	}

	groups := make([]CategoryGroup, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, CategoryGroup{Parent: label, Categories: byParent[label]})
	}

	return groups
}
