package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastFixture = `{
	"latitude": 39.74,
	"longitude": -104.99,
	"hourly": {
		"time": ["2025-06-01T00:00", "2025-06-01T01:00"],
		"temperature_2m": [18.2, 17.5],
		"wind_speed_10m": [8.1, 9.4]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, ttl time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(39.7392, -104.9903, ttl)
	c.baseURL = srv.URL
	return c
}

func TestForecastParsesHourlySeries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature_2m,wind_speed_10m", r.URL.Query().Get("hourly"))
		w.Write([]byte(forecastFixture))
	}, time.Minute)

	forecast, err := c.Forecast(context.Background())
	require.NoError(t, err)
	require.Len(t, forecast.Hours, 2)
	assert.Equal(t, 18.2, forecast.Hours[0].TemperatureC)
	assert.Equal(t, 9.4, forecast.Hours[1].WindSpeedKMH)
	assert.Equal(t, time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC), forecast.Hours[1].Time)
}

func TestForecastServesFromCacheWithinTTL(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(forecastFixture))
	}, time.Hour)

	_, err := c.Forecast(context.Background())
	require.NoError(t, err)
	_, err = c.Forecast(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestForecastRefetchesAfterTTL(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(forecastFixture))
	}, 0)

	_, err := c.Forecast(context.Background())
	require.NoError(t, err)
	_, err = c.Forecast(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestForecastUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, time.Minute)

	_, err := c.Forecast(context.Background())
	assert.ErrorContains(t, err, "status 503")
}

func TestForecastMismatchedSeriesLengths(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly": {"time": ["2025-06-01T00:00"], "temperature_2m": [], "wind_speed_10m": [1.0]}}`))
	}, time.Minute)

	_, err := c.Forecast(context.Background())
	assert.ErrorContains(t, err, "mismatched series lengths")
}
