package openweather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traviq/expense_assistant/internal/apperrors"
	"github.com/traviq/expense_assistant/internal/clients/openweather"
)

const testTimeout = 2 * time.Second

func TestCurrentWeather_Success(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":[{"description":"clear sky"}],"main":{"temp":18.5}}`))
	}))
	defer server.Close()

	client := openweather.NewClient(server.URL, "test-key", "metric", testTimeout)

	snapshot, err := client.CurrentWeather(context.Background(), "Berlin")

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "clear sky", snapshot.Description)
	assert.Equal(t, 18.5, snapshot.Temperature)

	assert.Equal(t, "Berlin", gotQuery["q"])
	assert.Equal(t, "test-key", gotQuery["appid"])
	assert.Equal(t, "metric", gotQuery["units"])
}

func TestCurrentWeather_ZeroTemperatureIsValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather":[{"description":""}],"main":{"temp":0}}`))
	}))
	defer server.Close()

	client := openweather.NewClient(server.URL, "test-key", "metric", testTimeout)

	snapshot, err := client.CurrentWeather(context.Background(), "Oslo")

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "", snapshot.Description)
	assert.Equal(t, 0.0, snapshot.Temperature)
}

func TestCurrentWeather_MissingConditionList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main":{"temp":12.3}}`))
	}))
	defer server.Close()

	client := openweather.NewClient(server.URL, "test-key", "metric", testTimeout)

	_, err := client.CurrentWeather(context.Background(), "Berlin")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedResponse)
}

func TestCurrentWeather_MissingTemperature(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather":[{"description":"overcast clouds"}],"main":{}}`))
	}))
	defer server.Close()

	client := openweather.NewClient(server.URL, "test-key", "metric", testTimeout)

	_, err := client.CurrentWeather(context.Background(), "Berlin")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedResponse)
}

func TestCurrentWeather_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>error</html>`))
	}))
	defer server.Close()

	client := openweather.NewClient(server.URL, "test-key", "metric", testTimeout)

	_, err := client.CurrentWeather(context.Background(), "Berlin")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedResponse)
}

func TestCurrentWeather_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	client := openweather.NewClient(server.URL, "test-key", "metric", testTimeout)

	_, err := client.CurrentWeather(context.Background(), "Nowhere")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransportFailure)
}

func TestCurrentWeather_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := openweather.NewClient(server.URL, "test-key", "metric", testTimeout)

	_, err := client.CurrentWeather(context.Background(), "Berlin")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransportFailure)
}
