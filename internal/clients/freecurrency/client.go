package freecurrency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/traviq/expense_assistant/internal/apperrors"
	"github.com/traviq/expense_assistant/internal/core/domain"
	"github.com/traviq/expense_assistant/internal/core/ports/gateways"
)

// Client fetches exchange rates from the FreeCurrency API. One Convert call
// makes exactly one outbound request: no caching, no retry.
type Client struct {
	httpClient   *http.Client
	apiURL       string
	apiKey       string
	homeCurrency string
}

var _ gateways.CurrencyGateway = (*Client)(nil)

// NewClient creates a FreeCurrency client. The timeout bounds each outbound
// call; exceeding it surfaces as a transport failure.
func NewClient(apiURL, apiKey, homeCurrency string, timeout time.Duration) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		apiURL:       apiURL,
		apiKey:       apiKey,
		homeCurrency: homeCurrency,
	}
}

// latestRatesResponse mirrors the provider's latest-rates body:
// {"data": {"USD": 1.08, ...}}.
type latestRatesResponse struct {
	Data map[string]decimal.Decimal `json:"data"`
}

// Convert fetches the sourceCurrency -> home currency rate and applies it to
// amount. The converted amount is always computed locally from the returned
// rate, never read from the provider response.
func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, sourceCurrency string) (*domain.ConversionResult, error) {
	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("base_currency", sourceCurrency)
	query.Set("currencies", c.homeCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build currency request: %v", apperrors.ErrTransportFailure, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: currency request failed: %v", apperrors.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: currency API returned status %d", apperrors.ErrTransportFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read currency response: %v", apperrors.ErrTransportFailure, err)
	}

	var parsed latestRatesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	rate, ok := parsed.Data[c.homeCurrency]
	if !ok {
		return nil, fmt.Errorf("%w: no rate for %s in currency response", apperrors.ErrRateNotFound, c.homeCurrency)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: non-positive rate %s for %s", apperrors.ErrMalformedResponse, rate, c.homeCurrency)
	}

	return &domain.ConversionResult{
		SourceCurrency:  sourceCurrency,
		TargetCurrency:  c.homeCurrency,
		Amount:          amount,
		Rate:            rate,
		ConvertedAmount: amount.Mul(rate),
	}, nil
}
