package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/traviq/expense_assistant/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record a new expense.
// Amount positivity is re-checked in the service layer before any provider
// call is made.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,len=3,uppercase"`
	City        string          `json:"city" binding:"required"`
	Description string          `json:"description"`
}

// ExpenseResponse defines the data returned for an enriched expense.
type ExpenseResponse struct {
	ExpenseID        string          `json:"expenseID"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	HomeCurrency     string          `json:"homeCurrency"`
	City             string          `json:"city"`
	Description      string          `json:"description"`
	Weather          string          `json:"weather"`
	Temperature      float64         `json:"temperature"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO.
func ToExpenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        expense.ExpenseID,
		OriginalAmount:   expense.OriginalAmount,
		OriginalCurrency: expense.OriginalCurrency,
		ConvertedAmount:  expense.ConvertedAmount,
		HomeCurrency:     expense.HomeCurrency,
		City:             expense.City,
		Description:      expense.Description,
		Weather:          expense.Weather,
		Temperature:      expense.Temperature,
		CreatedAt:        expense.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, exp := range expenses {
		res[i] = ToExpenseResponse(&exp)
	}
	return res
}
