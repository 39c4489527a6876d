package ledger

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by a Ledger operation wraps one
// of these, callers map them to their transport with errors.Is.
var (
	// ErrValidation is the class for bad or missing user input.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound is the class for references to resources that do not
	// exist. The phrasing allows wrapping as "there is no X ...".
	ErrNotFound = errors.New("there is no")

	// ErrInsufficientPool is returned when an allocation or payment
	// exceeds the money that is ready to assign.
	ErrInsufficientPool = errors.New("there is not enough money ready to assign")

	// ErrNothingToDo is the class for operations that would not change
	// anything. It is reported, not fatal.
	ErrNothingToDo = errors.New("nothing to do")
)

// ErrDuplicateTransaction is a confirmation gate, not a failure: the
// caller resolves it by re-invoking the insert with confirmation.
var ErrDuplicateTransaction = errors.New("a transaction with the same date, amount and description already exists in this month")

var (
	ErrCategoryNameEmpty = fmt.Errorf("%w: the category name must not be empty", ErrValidation)
	ErrCategoryNameTaken = fmt.Errorf("%w: an active category with this name already exists", ErrValidation)
	ErrCategoryNotFound  = fmt.Errorf("%w category matching your query", ErrNotFound)

	ErrAmountNotPositive  = fmt.Errorf("%w: the amount must be positive", ErrValidation)
	ErrAllocationNegative = fmt.Errorf("%w: the budgeted amount must not be negative", ErrValidation)

	ErrTransactionDateNotSet  = fmt.Errorf("%w: the transaction date must be set", ErrValidation)
	ErrTransactionTypeInvalid = fmt.Errorf("%w: the transaction type must be income or expense", ErrValidation)
	ErrExpenseWithoutCategory = fmt.Errorf("%w: an expense transaction needs a category", ErrValidation)
	ErrExpenseCategoryUnknown = fmt.Errorf("%w: the category for this expense does not exist", ErrValidation)
	ErrTransactionNotFound    = fmt.Errorf("%w transaction matching your query", ErrNotFound)

	ErrNoPreviousAllocation = fmt.Errorf("%w allocation for this category in the previous month", ErrNotFound)
	ErrAlreadyBudgeted      = fmt.Errorf("%w: the category already has at least the previous month's budget", ErrNothingToDo)

	ErrDebtNameEmpty      = fmt.Errorf("%w: the debt name must not be empty", ErrValidation)
	ErrDebtBalanceInvalid = fmt.Errorf("%w: the original balance must be positive and the current balance must not be negative", ErrValidation)
	ErrDebtRateInvalid    = fmt.Errorf("%w: the interest rate and minimum payment must not be negative", ErrValidation)
	ErrDebtNotFound       = fmt.Errorf("%w debt matching your query", ErrNotFound)

	ErrGoalNameEmpty         = fmt.Errorf("%w: the goal name must not be empty", ErrValidation)
	ErrGoalAmountNotPositive = fmt.Errorf("%w: the goal amount must be positive", ErrValidation)
	ErrGoalDueNotInFuture    = fmt.Errorf("%w: the goal due month must be after the current month", ErrValidation)
	ErrGoalNotFound          = fmt.Errorf("%w goal matching your query", ErrNotFound)
)
