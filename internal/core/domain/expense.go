package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a traveler's expense enriched with currency conversion
// and weather data. It is written once at creation and never updated.
type Expense struct {
	ExpenseID        string          `json:"expenseID"` // Assigned by the repository on save
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"` // e.g., "EUR"
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	HomeCurrency     string          `json:"homeCurrency"` // Fixed by configuration, e.g., "USD"
	City             string          `json:"city"`
	Description      string          `json:"description"`
	Weather          string          `json:"weather"` // e.g., "clear sky"
	Temperature      float64         `json:"temperature"`
	CreatedAt        time.Time       `json:"createdAt"`
}
