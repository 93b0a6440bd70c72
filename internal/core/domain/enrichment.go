package domain

import "github.com/shopspring/decimal"

// ConversionResult is the transient outcome of one currency gateway call.
// ConvertedAmount is always computed locally as Amount * Rate; the provider's
// own converted figure is never trusted.
type ConversionResult struct {
	SourceCurrency  string
	TargetCurrency  string
	Amount          decimal.Decimal
	Rate            decimal.Decimal
	ConvertedAmount decimal.Decimal
}

// WeatherSnapshot is the transient outcome of one weather gateway call.
// Temperature is in the provider-configured units.
type WeatherSnapshot struct {
	Description string
	Temperature float64
}
