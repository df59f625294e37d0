package handler

import (
	"net/http"

	"gamescope/backend/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ScatterPointResponse is one point of an EDA scatter chart.
type ScatterPointResponse struct {
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Reviews int     `json:"reviews"`
}

// ScatterSeriesResponse is a chart-ready scatter series with axis labels.
type ScatterSeriesResponse struct {
	XLabel string                 `json:"x_label"`
	YLabel string                 `json:"y_label"`
	Points []ScatterPointResponse `json:"points"`
}

func newScatterSeriesResponse(xLabel, yLabel string, points []dashboard.ScatterPoint) ScatterSeriesResponse {
	series := ScatterSeriesResponse{
		XLabel: xLabel,
		YLabel: yLabel,
		Points: make([]ScatterPointResponse, 0, len(points)),
	}
	for _, p := range points {
		series.Points = append(series.Points, ScatterPointResponse{
			Name:    p.Name,
			X:       p.X,
			Y:       p.Y,
			Reviews: p.Reviews,
		})
	}
	return series
}

// AverageEntryResponse is one bar of an averaged bar chart.
type AverageEntryResponse struct {
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

// BarSeriesResponse is a chart-ready bar series with axis labels.
type BarSeriesResponse struct {
	XLabel string                 `json:"x_label"`
	YLabel string                 `json:"y_label"`
	Bars   []AverageEntryResponse `json:"bars"`
}

func newBarSeriesResponse(xLabel, yLabel string, entries []dashboard.AverageEntry) BarSeriesResponse {
	series := BarSeriesResponse{
		XLabel: xLabel,
		YLabel: yLabel,
		Bars:   make([]AverageEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		series.Bars = append(series.Bars, AverageEntryResponse{Label: e.Label, Average: e.Average})
	}
	return series
}

// endregion

// GetPriceReception godoc
// @Summary      Price vs. user reception scatter
// @Description  Returns the scatter series relating price to positive-review percentage, over paid games with reviews.
// @Tags         eda
// @Produce      json
// @Success      200  {object}  ScatterSeriesResponse
// @Router       /eda/price-reception [get]
func (h *DashboardHandler) GetPriceReception(c *gin.Context) {
	points := dashboard.PriceReceptionPoints(h.table.Records())
	c.JSON(http.StatusOK, newScatterSeriesResponse("Price (USD)", "Positive User Review %", points))
}

// GetCriticsVsUsers godoc
// @Summary      Critic vs. user score quadrant scatter
// @Description  Returns the scatter series relating metacritic score to positive-review percentage, over games with both scores and over 100 reviews.
// @Tags         eda
// @Produce      json
// @Success      200  {object}  ScatterSeriesResponse
// @Router       /eda/critics-vs-users [get]
func (h *DashboardHandler) GetCriticsVsUsers(c *gin.Context) {
	points := dashboard.CriticsVsUsersPoints(h.table.Records())
	c.JSON(http.StatusOK, newScatterSeriesResponse("Metacritic Score", "Positive User Review %", points))
}

// GetOwnersByGameType godoc
// @Summary      Average owners by game type
// @Description  Returns the average estimated-owners lower bound per game-type classification, largest first.
// @Tags         eda
// @Produce      json
// @Success      200  {object}  BarSeriesResponse
// @Router       /eda/owners-by-game-type [get]
func (h *DashboardHandler) GetOwnersByGameType(c *gin.Context) {
	entries := dashboard.OwnersByGameType(h.table.Records())
	c.JSON(http.StatusOK, newBarSeriesResponse("Game Type", "Average Estimated Owners (Lower Bound)", entries))
}

// GetPlaytimePerDollar godoc
// @Summary      Playtime per dollar by genre
// @Description  Returns the average playtime minutes per dollar for each genre over paid games, top 15 genres.
// @Tags         eda
// @Produce      json
// @Success      200  {object}  BarSeriesResponse
// @Router       /eda/playtime-per-dollar [get]
func (h *DashboardHandler) GetPlaytimePerDollar(c *gin.Context) {
	entries := dashboard.PlaytimePerDollarByGenre(h.table.Records())
	if len(entries) > 15 {
		entries = entries[:15]
	}
	c.JSON(http.StatusOK, newBarSeriesResponse("Game Genre", "Average Playtime (Minutes) per Dollar", entries))
}
