package gateways

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/traviq/expense_assistant/internal/core/domain"
)

// CurrencyGateway wraps the external currency-conversion provider behind a
// narrow, typed contract. One invocation performs one outbound call.
type CurrencyGateway interface {
	// Convert fetches the rate from sourceCurrency into the process-wide home
	// currency and returns the conversion for amount.
	Convert(ctx context.Context, amount decimal.Decimal, sourceCurrency string) (*domain.ConversionResult, error)
}

// WeatherGateway wraps the external weather provider. The city is passed
// verbatim; the provider's first match is used.
type WeatherGateway interface {
	// CurrentWeather fetches the current condition and temperature for city.
	CurrentWeather(ctx context.Context, city string) (*domain.WeatherSnapshot, error)
}
