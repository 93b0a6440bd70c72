package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/traviq/expense_assistant/internal/apperrors"
	"github.com/traviq/expense_assistant/internal/core/domain"
	portsrepo "github.com/traviq/expense_assistant/internal/core/ports/repositories"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// NewExpenseRepository creates a new repository for enriched expenses.
func NewExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense and returns the stored copy. The
// identifier is assigned here; any id on the input is ignored.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	expense.ExpenseID = uuid.NewString()
	expense.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO expenses (expense_id, original_amount, original_currency, converted_amount, home_currency, city, description, weather, temperature, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.OriginalAmount,
		expense.OriginalCurrency,
		expense.ConvertedAmount,
		expense.HomeCurrency,
		expense.City,
		expense.Description,
		expense.Weather,
		expense.Temperature,
		expense.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to save expense %s: %w", expense.ExpenseID, err)
	}
	return &expense, nil
}

// FindExpenseByID retrieves an expense by its identifier.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, original_amount, original_currency, converted_amount, home_currency, city, description, weather, temperature, created_at
		FROM expenses
		WHERE expense_id = $1;
	`
	var expense domain.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&expense.ExpenseID,
		&expense.OriginalAmount,
		&expense.OriginalCurrency,
		&expense.ConvertedAmount,
		&expense.HomeCurrency,
		&expense.City,
		&expense.Description,
		&expense.Weather,
		&expense.Temperature,
		&expense.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by id %s: %w", expenseID, err)
	}

	return &expense, nil
}

// FindAllExpenses retrieves all expenses. The order is stable across calls.
func (r *PgxExpenseRepository) FindAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, original_amount, original_currency, converted_amount, home_currency, city, description, weather, temperature, created_at
		FROM expenses
		ORDER BY created_at, expense_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Expense, error) {
		var expense domain.Expense
		err := row.Scan(
			&expense.ExpenseID,
			&expense.OriginalAmount,
			&expense.OriginalCurrency,
			&expense.ConvertedAmount,
			&expense.HomeCurrency,
			&expense.City,
			&expense.Description,
			&expense.Weather,
			&expense.Temperature,
			&expense.CreatedAt,
		)
		return expense, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpenseByID removes an expense. Zero rows affected is success:
// deletion is idempotent at this layer.
func (r *PgxExpenseRepository) DeleteExpenseByID(ctx context.Context, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1;`

	_, err := r.Pool.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return nil
}
