package handler

import (
	"net/http"

	"gamescope/backend/internal/weather"

	"github.com/gin-gonic/gin"
)

// WeatherHandler serves the live forecast demo page.
type WeatherHandler struct {
	client *weather.Client
}

// NewWeatherHandler creates a WeatherHandler backed by the given client.
func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{client: client}
}

// GetWeather godoc
// @Summary      Get the hourly weather forecast
// @Description  Returns the cached 3-day hourly temperature and wind forecast for the configured location.
// @Tags         demos
// @Produce      json
// @Success      200  {object}  weather.Forecast
// @Failure      502  {object}  ErrorResponse "Upstream forecast API failed"
// @Router       /weather [get]
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	forecast, err := h.client.Forecast(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching data: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, forecast)
}
