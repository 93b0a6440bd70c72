package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/traviq/expense_assistant/internal/apperrors"
	"github.com/traviq/expense_assistant/internal/core/domain"
	"github.com/traviq/expense_assistant/internal/core/ports/gateways"
)

// Client fetches current weather from the OpenWeather API. The city is passed
// verbatim; the provider's first match is used, with no geocoding or
// disambiguation.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	units      string
}

var _ gateways.WeatherGateway = (*Client)(nil)

// NewClient creates an OpenWeather client. Units select the temperature scale
// reported by the provider (e.g., "metric" for Celsius).
func NewClient(apiURL, apiKey, units string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
		units:      units,
	}
}

// currentWeatherResponse mirrors the fields used from the provider's
// current-weather body. Pointers distinguish an absent field from a
// present-but-zero value: only structural absence is a malformed response.
type currentWeatherResponse struct {
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// CurrentWeather fetches the current condition description and temperature
// for city.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", c.units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build weather request: %v", apperrors.ErrTransportFailure, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: weather request failed: %v", apperrors.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: weather API returned status %d", apperrors.ErrTransportFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read weather response: %v", apperrors.ErrTransportFailure, err)
	}

	var parsed currentWeatherResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	if len(parsed.Weather) == 0 || parsed.Weather[0].Description == nil {
		return nil, fmt.Errorf("%w: weather response missing condition list", apperrors.ErrMalformedResponse)
	}
	if parsed.Main == nil || parsed.Main.Temp == nil {
		return nil, fmt.Errorf("%w: weather response missing temperature", apperrors.ErrMalformedResponse)
	}

	return &domain.WeatherSnapshot{
		Description: *parsed.Weather[0].Description,
		Temperature: *parsed.Main.Temp,
	}, nil
}
