package services

import (
	"context"

	"github.com/traviq/expense_assistant/internal/core/domain"
	"github.com/traviq/expense_assistant/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses.
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a single expense by its identifier.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves all persisted expenses.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expenses.
type ExpenseWriterSvc interface {
	// CreateExpense enriches the submission with currency and weather data
	// and persists the result. Nothing is persisted if either provider fails.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense by id. Idempotent.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
