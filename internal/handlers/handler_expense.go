package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/traviq/expense_assistant/internal/apperrors"
	portssvc "github.com/traviq/expense_assistant/internal/core/ports/services"
	"github.com/traviq/expense_assistant/internal/dto"
	"github.com/traviq/expense_assistant/internal/middleware"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// RegisterExpenseRoutes registers routes related to expenses.
func RegisterExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpenseByID)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Record a new expense
// @Description Records an expense, enriched with a currency conversion into the home currency and the current weather at the city of purchase
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Provider enrichment failed"
// @Failure 500 {object} map[string]string "Failed to create expense"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create expense",
		slog.String("currency", req.Currency),
		slog.String("city", req.City),
	)

	createdExpense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrEnrichment):
			// The full provider error stays in the logs; the response names
			// the failing provider but not its response shape.
			logger.Error("Enrichment failed for expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": enrichmentFailureMessage(err)})
		default:
			logger.Error("Failed to create expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		}
		return
	}

	logger.Info("Expense created successfully", slog.String("expense_id", createdExpense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(createdExpense))
}

// getExpenseByID godoc
// @Summary Get an expense by id
// @Description Retrieves a single enriched expense by its identifier
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to retrieve expense"
// @Router /expenses/{expenseID} [get]
func (h *expenseHandler) getExpenseByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	logger = logger.With(slog.String("expense_id", expenseID))
	logger.Info("Received request to get expense by id")

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Expense not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		} else {
			logger.Error("Failed to get expense from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve expense"})
		}
		return
	}

	logger.Info("Expense retrieved successfully")
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List all expenses
// @Description Retrieves all recorded expenses
// @Tags expenses
// @Produce  json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list expenses")

	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list expenses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	logger.Info("Expenses listed successfully", slog.Int("count", len(expenses)))
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Deletes an expense by id. Deleting a non-existent id is not an error.
// @Tags expenses
// @Param   expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to delete expense"
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	logger = logger.With(slog.String("expense_id", expenseID))
	logger.Info("Received request to delete expense")

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		logger.Error("Failed to delete expense in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	logger.Info("Expense deleted successfully")
	c.Status(http.StatusNoContent)
}

// enrichmentFailureMessage maps an enrichment error to a client-safe message
// naming the failing provider only.
func enrichmentFailureMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrRateNotFound):
		return "Currency provider returned no rate for the home currency"
	case errors.Is(err, apperrors.ErrTransportFailure), errors.Is(err, apperrors.ErrMalformedResponse):
		return "Failed to fetch enrichment data from an external provider"
	default:
		return "Failed to enrich expense"
	}
}
