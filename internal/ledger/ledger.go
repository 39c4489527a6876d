// Package ledger implements the budget core: the category registry,
// the monthly ledgers, the allocation engine guarding the ready-to-assign
// pool, and the debt and goal trackers.
//
// A Ledger owns one models.Document and mutates it in place. All
// operations are synchronous and either fully apply or fully reject;
// callers are expected to serialize mutations.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Reserved labels managed by the engine.
const (
	// DebtPaymentsCategoryName is the category debt payments are booked
	// against. It is created once on the first payment and reused.
	DebtPaymentsCategoryName = "Debt Payments"

	// GoalsParentLabel is the parent grouping for goal backing categories.
	GoalsParentLabel = "Savings Goals"

	// UngroupedLabel is the bucket for categories without a parent.
	UngroupedLabel = "Ungrouped"
)

// Ledger is the aggregate over one budget document.
type Ledger struct {
	doc *models.Document
	now func() time.Time

	// Reserved category IDs are resolved once, never by name in
	// steady-state operations.
	debtCategoryID uuid.UUID
	goalCategories map[uuid.UUID]uuid.UUID // goal ID -> backing category ID
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces the wall clock, used by tests to pin the current month.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New returns a Ledger over the document passed in.
//
// The document must already be migrated (models.Migrate). Reserved
// category links that the document format cannot store (the debt
// payment category, the backing category of each goal) are re-resolved
// here, once, so that no name lookups happen during operations.
func New(doc *models.Document, options ...Option) *Ledger {
	l := &Ledger{
		doc:            doc,
		now:            time.Now,
		goalCategories: make(map[uuid.UUID]uuid.UUID),
	}

	for _, option := range options {
		option(l)
	}

	for _, category := range doc.Categories {
		if strings.EqualFold(category.Name, DebtPaymentsCategoryName) {
			l.debtCategoryID = category.ID
			break
		}
	}

	for _, goal := range doc.Goals {
		for _, category := range doc.Categories {
			if category.ParentCategory == GoalsParentLabel && strings.EqualFold(category.Name, goal.Name) {
				l.goalCategories[goal.ID] = category.ID
				break
			}
		}
	}

	return l
}

// Document returns the underlying document, e.g. for persisting it.
func (l *Ledger) Document() *models.Document {
	return l.doc
}

// ReadyToAssign returns the money that is not committed to any
// category, debt or goal yet.
func (l *Ledger) ReadyToAssign() decimal.Decimal {
	return l.doc.ReadyToAssign
}

// CurrentMonth returns the month the wall clock is in.
func (l *Ledger) CurrentMonth() types.Month {
	return types.MonthOf(l.now())
}

// category looks a category up by ID.
func (l *Ledger) category(id uuid.UUID) (models.Category, bool) {
	category, ok := l.doc.Categories[id.String()]
	return category, ok
}

// debitPool takes delta out of the ready-to-assign pool.
//
// A positive delta is rejected when it exceeds the pool, so an
// allocation can never drive the pool negative. Negative deltas give
// money back and always succeed, even while the pool is negative from
// an income correction.
func (l *Ledger) debitPool(delta decimal.Decimal) error {
	if delta.IsPositive() && delta.GreaterThan(l.doc.ReadyToAssign) {
		return ErrInsufficientPool
	}

	l.doc.ReadyToAssign = l.doc.ReadyToAssign.Sub(delta)
	return nil
}

// creditPool gives money back to the pool.
func (l *Ledger) creditPool(amount decimal.Decimal) {
	l.doc.ReadyToAssign = l.doc.ReadyToAssign.Add(amount)
}
