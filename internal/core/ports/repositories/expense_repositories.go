package repositories

import (
	"context"

	"github.com/traviq/expense_assistant/internal/core/domain"
)

// ExpenseReader defines read operations for persisted expenses.
type ExpenseReader interface {
	// FindExpenseByID retrieves a single expense by its identifier.
	// Returns apperrors.ErrNotFound when no expense exists for the id.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindAllExpenses retrieves every persisted expense in a stable order.
	FindAllExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for persisted expenses.
type ExpenseWriter interface {
	// SaveExpense persists a new expense and returns the stored copy with its
	// assigned identifier. The identifier on the input is ignored.
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// DeleteExpenseByID removes an expense. Deleting an id that does not
	// exist is not an error.
	DeleteExpenseByID(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
