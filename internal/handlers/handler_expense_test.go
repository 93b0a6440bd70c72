package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/traviq/expense_assistant/internal/apperrors"
	"github.com/traviq/expense_assistant/internal/core/domain"
	portssvc "github.com/traviq/expense_assistant/internal/core/ports/services"
	"github.com/traviq/expense_assistant/internal/dto"
	"github.com/traviq/expense_assistant/internal/handlers"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Test Suite ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockExpenseService
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockExpenseService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterExpenseRoutes(v1, suite.mockService)
}

func (suite *ExpenseHandlerTestSuite) performRequest(method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	expenseID := uuid.NewString()
	expected := &domain.Expense{
		ExpenseID:        expenseID,
		OriginalAmount:   decimal.NewFromInt(100),
		OriginalCurrency: "EUR",
		ConvertedAmount:  decimal.NewFromInt(108),
		HomeCurrency:     "USD",
		City:             "Berlin",
		Description:      "Dinner",
		Weather:          "clear sky",
		Temperature:      18.5,
	}

	suite.mockService.On("CreateExpense", mock.Anything, mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(100)) && req.Currency == "EUR" && req.City == "Berlin"
	})).Return(expected, nil).Once()

	body := []byte(`{"amount":100,"currency":"EUR","city":"Berlin","description":"Dinner"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expenseID, resp.ExpenseID)
	suite.True(resp.ConvertedAmount.Equal(decimal.NewFromInt(108)))
	suite.Equal("USD", resp.HomeCurrency)
	suite.Equal("clear sky", resp.Weather)
	suite.Equal(18.5, resp.Temperature)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_BindingFailure() {
	// Missing required city field
	body := []byte(`{"amount":100,"currency":"EUR"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_LowercaseCurrencyRejected() {
	body := []byte(`{"amount":100,"currency":"eur","city":"Berlin"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_ValidationErrorFromService() {
	suite.mockService.On("CreateExpense", mock.Anything, mock.AnythingOfType("dto.CreateExpenseRequest")).
		Return(nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)).Once()

	body := []byte(`{"amount":5,"currency":"EUR","city":"Berlin"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_EnrichmentFailure() {
	enrichmentErr := fmt.Errorf("%w: weather provider: %w", apperrors.ErrEnrichment, apperrors.ErrTransportFailure)
	suite.mockService.On("CreateExpense", mock.Anything, mock.AnythingOfType("dto.CreateExpenseRequest")).
		Return(nil, enrichmentErr).Once()

	body := []byte(`{"amount":100,"currency":"EUR","city":"Berlin"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusBadGateway, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	// Provider response internals must not leak to the client
	suite.NotContains(resp["error"], "weather provider:")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestGetExpenseByID_Success() {
	expenseID := uuid.NewString()
	expected := &domain.Expense{ExpenseID: expenseID, City: "Berlin"}

	suite.mockService.On("GetExpenseByID", mock.Anything, expenseID).Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses/"+expenseID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expenseID, resp.ExpenseID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestGetExpenseByID_NotFound() {
	expenseID := uuid.NewString()

	suite.mockService.On("GetExpenseByID", mock.Anything, expenseID).
		Return(nil, fmt.Errorf("failed to get expense by id in service: %w", apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses/"+expenseID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_Success() {
	expected := []domain.Expense{
		{ExpenseID: uuid.NewString(), City: "Berlin"},
		{ExpenseID: uuid.NewString(), City: "Paris"},
	}

	suite.mockService.On("ListExpenses", mock.Anything).Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/expenses", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_NoContent() {
	expenseID := uuid.NewString()

	suite.mockService.On("DeleteExpense", mock.Anything, expenseID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/expenses/"+expenseID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockService.AssertExpectations(suite.T())
}

func TestExpenseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
