package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamescope/backend/internal/dataset"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *dataset.Table {
	return dataset.NewTable([]dataset.GameRecord{
		{
			Name: "Cheap Indie", Price: 4.99, MetacriticScore: 75, PctPosTotal: 92,
			NumReviewsTotal: 500, AveragePlaytimeForever: 300, Genres: []string{"Indie", "Casual"},
			Windows: 1, Mac: 1, EstimatedOwnersLowerBound: 50000,
			GameType: dataset.GameTypeSingleOnly,
		},
		{
			Name: "Pricey Action", Price: 59.99, MetacriticScore: 88, PctPosTotal: 81,
			NumReviewsTotal: 120000, AveragePlaytimeForever: 1200, Genres: []string{"Action", "RPG"},
			Windows: 1, EstimatedOwnersLowerBound: 5000000,
			GameType: dataset.GameTypeSingleAndMulti,
		},
		{
			Name: "Free Shooter", Price: 0, MetacriticScore: 0, PctPosTotal: 70,
			NumReviewsTotal: 900000, Genres: []string{"Action", "Free To Play"},
			Windows: 1, Linux: 1, EstimatedOwnersLowerBound: 50000000,
			GameType: dataset.GameTypeMultiOnly,
		},
	}, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func dashboardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(testTable())

	router := gin.New()
	router.GET("/api/v1/dashboard", h.GetDashboard)
	router.GET("/api/v1/dashboard/games", h.GetFilteredGames)
	router.GET("/api/v1/filters", h.GetFilterOptions)
	router.GET("/api/v1/genres", h.GetGenreBreakdown)
	router.GET("/api/v1/eda/price-reception", h.GetPriceReception)
	router.GET("/api/v1/eda/critics-vs-users", h.GetCriticsVsUsers)
	router.GET("/api/v1/eda/owners-by-game-type", h.GetOwnersByGameType)
	router.GET("/api/v1/eda/playtime-per-dollar", h.GetPlaytimePerDollar)
	return router
}

func doGet(t *testing.T, router *gin.Engine, url string, out any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestGetDashboardUnfiltered(t *testing.T) {
	router := dashboardRouter()

	var resp DashboardResponse
	w := doGet(t, router, "/api/v1/dashboard", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.Empty)
	assert.Equal(t, 3, resp.ResultCount)
	assert.Equal(t, 3, resp.Summary.TotalGames)
	assert.Equal(t, int64(55050000), resp.Summary.TotalOwnersLowerBound)
	// Free Shooter has no metacritic score and must not drag the average down.
	assert.InDelta(t, 81.5, resp.Summary.AverageMetacritic, 1e-9)
	assert.Equal(t, 3, resp.Platforms.Windows)
	assert.Equal(t, 1, resp.Platforms.Mac)
	assert.Len(t, resp.TopByPositiveReviews, 3)
	assert.Equal(t, "Cheap Indie", resp.TopByPositiveReviews[0].Name)
	assert.Equal(t, "Free Shooter", resp.TopByOwners[0].Name)
}

func TestGetDashboardGenreAndPriceFilter(t *testing.T) {
	router := dashboardRouter()

	var resp DashboardResponse
	w := doGet(t, router, "/api/v1/dashboard?genres=Indie&price_min=0&price_max=10", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, resp.ResultCount)
	assert.Equal(t, "Cheap Indie", resp.TopByPositiveReviews[0].Name)

	// The response echoes the constraints that were applied.
	assert.Equal(t, []string{"Indie"}, resp.Filter.Genres)
	require.NotNil(t, resp.Filter.PriceMax)
	assert.Equal(t, 10.0, *resp.Filter.PriceMax)
	assert.Nil(t, resp.Filter.OwnersMax, "unconstrained bounds are omitted")
	assert.Zero(t, resp.Filter.MinReviews)
}

func TestGetDashboardEmptyState(t *testing.T) {
	router := dashboardRouter()

	var resp DashboardResponse
	w := doGet(t, router, "/api/v1/dashboard?genres=Horror", &resp)

	// Matching nothing is a valid render, not an error.
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Empty)
	assert.NotEmpty(t, resp.Message)
	assert.Zero(t, resp.ResultCount)
	assert.Empty(t, resp.TopByPositiveReviews)
	assert.Equal(t, []string{"Horror"}, resp.Filter.Genres, "the empty state still echoes the filter")
}

func TestGetFilteredGamesSorting(t *testing.T) {
	router := dashboardRouter()

	var resp PaginatedGameRowResponse
	w := doGet(t, router, "/api/v1/dashboard/games?sort_by=price&sort_order=asc", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "Free Shooter", resp.Data[0].Name)
	assert.Equal(t, "Pricey Action", resp.Data[2].Name)
	assert.Equal(t, int64(3), resp.Meta.TotalItems)
}

func TestGetFilteredGamesPagination(t *testing.T) {
	router := dashboardRouter()

	var resp PaginatedGameRowResponse
	w := doGet(t, router, "/api/v1/dashboard/games?sort_by=price&sort_order=desc&page=2&limit=2", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Free Shooter", resp.Data[0].Name)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestGetFilteredGamesRejectsUnknownSortColumn(t *testing.T) {
	router := dashboardRouter()

	w := doGet(t, router, "/api/v1/dashboard/games?sort_by=release_date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFilterOptions(t *testing.T) {
	router := dashboardRouter()

	var resp FilterOptionsResponse
	w := doGet(t, router, "/api/v1/filters", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Action", "Casual", "Free To Play", "Indie", "RPG"}, resp.Genres)
	assert.Equal(t, 59.99, resp.MaxPrice)
	assert.Equal(t, 900000, resp.MaxReviews)
	assert.Equal(t, 3, resp.TotalGames)
	assert.Equal(t, 100, resp.ScoreMax)
}

func TestGetGenreBreakdown(t *testing.T) {
	router := dashboardRouter()

	var resp []BreakdownEntryResponse
	w := doGet(t, router, "/api/v1/genres", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, resp)
	assert.Equal(t, BreakdownEntryResponse{Label: "Action", Count: 2}, resp[0])
}

func TestGetPriceReception(t *testing.T) {
	router := dashboardRouter()

	var resp ScatterSeriesResponse
	w := doGet(t, router, "/api/v1/eda/price-reception", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	// The free game carries no price signal and is excluded.
	assert.Len(t, resp.Points, 2)
	assert.Equal(t, "Price (USD)", resp.XLabel)
}

func TestGetCriticsVsUsers(t *testing.T) {
	router := dashboardRouter()

	var resp ScatterSeriesResponse
	w := doGet(t, router, "/api/v1/eda/critics-vs-users", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Points, 2)
	for _, p := range resp.Points {
		assert.Greater(t, p.Reviews, 100)
		assert.Greater(t, p.X, 0.0)
	}
}

func TestGetOwnersByGameType(t *testing.T) {
	router := dashboardRouter()

	var resp BarSeriesResponse
	w := doGet(t, router, "/api/v1/eda/owners-by-game-type", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Game Type", resp.XLabel)
	require.Len(t, resp.Bars, 3)
	assert.Equal(t, dataset.GameTypeMultiOnly, resp.Bars[0].Label)
	assert.InDelta(t, 50000000, resp.Bars[0].Average, 0.001)
	assert.Equal(t, dataset.GameTypeSingleAndMulti, resp.Bars[1].Label)
	assert.Equal(t, dataset.GameTypeSingleOnly, resp.Bars[2].Label)
}

func TestGetPlaytimePerDollar(t *testing.T) {
	router := dashboardRouter()

	var resp BarSeriesResponse
	w := doGet(t, router, "/api/v1/eda/playtime-per-dollar", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Game Genre", resp.XLabel)
	// The free shooter contributes nothing, so only the paid games' genres
	// appear, highest minutes-per-dollar first.
	labels := make([]string, 0, len(resp.Bars))
	for _, b := range resp.Bars {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Casual", "Indie", "Action", "RPG"}, labels)
	assert.NotContains(t, labels, "Free To Play")
	assert.InDelta(t, 300/4.99, resp.Bars[0].Average, 0.001)
}
