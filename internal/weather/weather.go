// Package weather fetches the hourly forecast for a fixed location from
// open-meteo, caching the result so repeated renders don't hammer the
// upstream API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// open-meteo returns local times without a zone designator.
const timeLayout = "2006-01-02T15:04"

// HourlyPoint is one hour of the forecast.
type HourlyPoint struct {
	Time         time.Time `json:"time"`
	TemperatureC float64   `json:"temperature_c"`
	WindSpeedKMH float64   `json:"wind_speed_kmh"`
}

// Forecast is a fetched hourly forecast.
type Forecast struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	FetchedAt time.Time     `json:"fetched_at"`
	Hours     []HourlyPoint `json:"hours"`
}

// Client fetches and caches forecasts for one location.
type Client struct {
	lat, lon   float64
	ttl        time.Duration
	baseURL    string
	httpClient *http.Client

	mu        sync.Mutex
	cached    *Forecast
	fetchedAt time.Time
}

// NewClient creates a Client for the given coordinates. Fetched forecasts
// are served from cache for ttl.
func NewClient(lat, lon float64, ttl time.Duration) *Client {
	return &Client{
		lat:        lat,
		lon:        lon,
		ttl:        ttl,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type forecastPayload struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature2M []float64 `json:"temperature_2m"`
		WindSpeed10M  []float64 `json:"wind_speed_10m"`
	} `json:"hourly"`
}

// Forecast returns the cached forecast if it is still fresh, fetching from
// the upstream API otherwise.
func (c *Client) Forecast(ctx context.Context) (*Forecast, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.cached, nil
	}

	forecast, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.cached = forecast
	c.fetchedAt = forecast.FetchedAt
	return forecast, nil
}

func (c *Client) fetch(ctx context.Context) (*Forecast, error) {
	url := fmt.Sprintf("%s?latitude=%g&longitude=%g&hourly=temperature_2m,wind_speed_10m&forecast_days=3",
		c.baseURL, c.lat, c.lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building forecast request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding forecast response: %w", err)
	}

	hourly := payload.Hourly
	if len(hourly.Time) != len(hourly.Temperature2M) || len(hourly.Time) != len(hourly.WindSpeed10M) {
		return nil, fmt.Errorf("forecast API returned mismatched series lengths (%d times, %d temperatures, %d wind speeds)",
			len(hourly.Time), len(hourly.Temperature2M), len(hourly.WindSpeed10M))
	}

	forecast := &Forecast{
		Latitude:  c.lat,
		Longitude: c.lon,
		FetchedAt: time.Now(),
		Hours:     make([]HourlyPoint, 0, len(hourly.Time)),
	}
	for i, ts := range hourly.Time {
		t, err := time.Parse(timeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("error parsing forecast timestamp '%s': %w", ts, err)
		}
		forecast.Hours = append(forecast.Hours, HourlyPoint{
			Time:         t,
			TemperatureC: hourly.Temperature2M[i],
			WindSpeedKMH: hourly.WindSpeed10M[i],
		})
	}

	return forecast, nil
}
