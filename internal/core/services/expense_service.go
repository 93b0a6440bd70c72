package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/traviq/expense_assistant/internal/apperrors"
	"github.com/traviq/expense_assistant/internal/core/domain"
	"github.com/traviq/expense_assistant/internal/core/ports/gateways"
	portsrepo "github.com/traviq/expense_assistant/internal/core/ports/repositories"
	portssvc "github.com/traviq/expense_assistant/internal/core/ports/services"
	"github.com/traviq/expense_assistant/internal/dto"
)

// ExpenseService orchestrates expense enrichment: it fans out to the currency
// and weather gateways, merges their results with the submission, and
// persists the enriched expense. An expense is either fully enriched or not
// created at all.
type ExpenseService struct {
	expenseRepo     portsrepo.ExpenseRepositoryFacade
	currencyGateway gateways.CurrencyGateway
	weatherGateway  gateways.WeatherGateway
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, currencyGateway gateways.CurrencyGateway, weatherGateway gateways.WeatherGateway) *ExpenseService {
	return &ExpenseService{
		expenseRepo:     expenseRepo,
		currencyGateway: currencyGateway,
		weatherGateway:  weatherGateway,
	}
}

// Ensure implementation matches interface
var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// CreateExpense validates the submission, calls both provider gateways
// concurrently, and persists the merged result. Validation failures are
// rejected before any outbound call; a gateway failure means nothing is
// persisted.
func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Currency) == "" {
		return nil, fmt.Errorf("%w: currency must not be blank", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.City) == "" {
		return nil, fmt.Errorf("%w: city must not be blank", apperrors.ErrValidation)
	}

	// The two provider calls have no data dependency, so they run
	// concurrently; total latency is bounded by the slower of the two. Each
	// call observes the request context, so a client disconnect abandons
	// both. A failed sibling is not cancelled early: both calls are bounded
	// by the provider timeout, and letting them finish keeps failure
	// attribution accurate.
	var (
		conversion  *domain.ConversionResult
		snapshot    *domain.WeatherSnapshot
		currencyErr error
		weatherErr  error
	)
	var g errgroup.Group
	g.Go(func() error {
		conversion, currencyErr = s.currencyGateway.Convert(ctx, req.Amount, req.Currency)
		return currencyErr
	})
	g.Go(func() error {
		snapshot, weatherErr = s.weatherGateway.CurrentWeather(ctx, req.City)
		return weatherErr
	})
	_ = g.Wait() // errors are inspected per gateway below

	// When both gateways fail, the currency failure is reported.
	if currencyErr != nil {
		return nil, fmt.Errorf("%w: currency provider: %w", apperrors.ErrEnrichment, currencyErr)
	}
	if weatherErr != nil {
		return nil, fmt.Errorf("%w: weather provider: %w", apperrors.ErrEnrichment, weatherErr)
	}

	expense := domain.Expense{
		OriginalAmount:   conversion.Amount,
		OriginalCurrency: conversion.SourceCurrency,
		ConvertedAmount:  conversion.ConvertedAmount,
		HomeCurrency:     conversion.TargetCurrency,
		City:             req.City,
		Description:      req.Description,
		Weather:          snapshot.Description,
		Temperature:      snapshot.Temperature,
	}

	saved, err := s.expenseRepo.SaveExpense(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to save expense in service: %w", err)
	}

	return saved, nil
}

// GetExpenseByID retrieves a single expense by its identifier.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		// Repository layer handles ErrNotFound mapping
		return nil, fmt.Errorf("failed to get expense by id in service: %w", err)
	}
	return expense, nil
}

// ListExpenses retrieves all persisted expenses.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindAllExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in service: %w", err)
	}
	// Return empty slice if no expenses found, not nil
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// DeleteExpense removes an expense by id. Deleting an id that does not exist
// is not an error.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpenseByID(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense in service: %w", err)
	}
	return nil
}
