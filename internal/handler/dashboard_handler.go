package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gamescope/backend/internal/dashboard"
	"gamescope/backend/internal/dataset"

	"github.com/gin-gonic/gin"
)

// noResultsMessage is shown instead of charts when the filters match nothing.
const noResultsMessage = "No games match the selected filters. Try widening the ranges or clearing some selections."

// DashboardHandler serves the interactive dashboard endpoints. The table is
// loaded once at startup and passed in read-only; handlers never mutate it.
type DashboardHandler struct {
	table *dataset.Table
}

// NewDashboardHandler creates a DashboardHandler over the loaded table.
func NewDashboardHandler(table *dataset.Table) *DashboardHandler {
	return &DashboardHandler{table: table}
}

// region --- DTOs ---

// GameRowResponse is one row of the filtered table view.
type GameRowResponse struct {
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	PctPosTotal      float64  `json:"pct_pos_total"`
	MetacriticScore  int      `json:"metacritic_score"`
	OwnersLowerBound int64    `json:"owners_lower_bound"`
	NumReviewsTotal  int      `json:"num_reviews_total"`
	GameType         string   `json:"game_type"`
	Genres           []string `json:"genres"`
}

func newGameRowResponse(r dataset.GameRecord) GameRowResponse {
	return GameRowResponse{
		Name:             r.Name,
		Price:            r.Price,
		PctPosTotal:      r.PctPosTotal,
		MetacriticScore:  r.MetacriticScore,
		OwnersLowerBound: r.EstimatedOwnersLowerBound,
		NumReviewsTotal:  r.NumReviewsTotal,
		GameType:         r.GameType,
		Genres:           r.Genres,
	}
}

func newGameRowResponses(records []dataset.GameRecord) []GameRowResponse {
	rows := make([]GameRowResponse, 0, len(records))
	for _, r := range records {
		rows = append(rows, newGameRowResponse(r))
	}
	return rows
}

// SummaryResponse is the headline metric row of the dashboard.
type SummaryResponse struct {
	TotalGames            int     `json:"total_games"`
	AveragePrice          float64 `json:"average_price"`
	AverageMetacritic     float64 `json:"average_metacritic"`
	TotalOwnersLowerBound int64   `json:"total_owners_lower_bound"`
}

// BreakdownEntryResponse is one slice of a categorical breakdown.
type BreakdownEntryResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func newBreakdownResponse(entries []dashboard.BreakdownEntry) []BreakdownEntryResponse {
	out := make([]BreakdownEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, BreakdownEntryResponse{Label: e.Label, Count: e.Count})
	}
	return out
}

// PlatformSupportResponse counts games per supported platform.
type PlatformSupportResponse struct {
	Windows int `json:"windows"`
	Mac     int `json:"mac"`
	Linux   int `json:"linux"`
}

// FilterEchoResponse echoes the constraints a dashboard render applied.
// Upper bounds left unconstrained are omitted rather than reported as the
// internal open-range sentinels.
type FilterEchoResponse struct {
	Genres     []string `json:"genres,omitempty"`
	GameTypes  []string `json:"game_types,omitempty"`
	PriceMin   float64  `json:"price_min"`
	PriceMax   *float64 `json:"price_max,omitempty"`
	ScoreMin   int      `json:"score_min"`
	ScoreMax   int      `json:"score_max"`
	OwnersMin  int64    `json:"owners_min"`
	OwnersMax  *int64   `json:"owners_max,omitempty"`
	MinReviews int      `json:"min_reviews"`
}

func newFilterEchoResponse(f dashboard.Filter) FilterEchoResponse {
	echo := FilterEchoResponse{
		Genres:     f.Genres,
		GameTypes:  f.GameTypes,
		PriceMin:   f.PriceMin,
		ScoreMin:   f.ScoreMin,
		ScoreMax:   f.ScoreMax,
		OwnersMin:  f.OwnersMin,
		MinReviews: f.MinReviews,
	}
	if f.PriceMax < math.MaxFloat64 {
		echo.PriceMax = &f.PriceMax
	}
	if f.OwnersMax < math.MaxInt64 {
		echo.OwnersMax = &f.OwnersMax
	}
	return echo
}

// DashboardResponse is the full dashboard render for one filter set.
type DashboardResponse struct {
	Empty                bool                     `json:"empty"`
	Message              string                   `json:"message,omitempty"`
	Filter               FilterEchoResponse       `json:"filter"`
	ResultCount          int                      `json:"result_count"`
	Summary              SummaryResponse          `json:"summary"`
	TopByPositiveReviews []GameRowResponse        `json:"top_by_positive_reviews"`
	TopByOwners          []GameRowResponse        `json:"top_by_owners"`
	Platforms            PlatformSupportResponse  `json:"platforms"`
	GameTypes            []BreakdownEntryResponse `json:"game_types"`
}

// PaginatedGameRowResponse defines the structure for a paginated table view.
type PaginatedGameRowResponse struct {
	Data []GameRowResponse `json:"data"`
	Meta PaginationMeta    `json:"meta"`
}

// FilterOptionsResponse describes the value domains the filter controls
// should offer, computed once from the full dataset.
type FilterOptionsResponse struct {
	Genres        []string  `json:"genres"`
	GameTypes     []string  `json:"game_types"`
	MaxPrice      float64   `json:"max_price"`
	MaxReviews    int       `json:"max_reviews"`
	ScoreMin      int       `json:"score_min"`
	ScoreMax      int       `json:"score_max"`
	TotalGames    int       `json:"total_games"`
	LastRefreshed time.Time `json:"last_refreshed"`
}

// endregion

// region --- Query parsing ---

// parseFilter builds a dashboard.Filter from query parameters. Unset
// parameters leave the corresponding constraint open.
func parseFilter(c *gin.Context) dashboard.Filter {
	f := dashboard.Unconstrained()

	if v := c.Query("genres"); v != "" {
		f.Genres = splitCommaSeparated(v)
	}
	if v := c.Query("game_types"); v != "" {
		f.GameTypes = splitCommaSeparated(v)
	}
	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		f.PriceMin = v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		f.PriceMax = v
	}
	if v, err := strconv.Atoi(c.Query("score_min")); err == nil {
		f.ScoreMin = v
	}
	if v, err := strconv.Atoi(c.Query("score_max")); err == nil {
		f.ScoreMax = v
	}
	if v, err := strconv.ParseInt(c.Query("owners_min"), 10, 64); err == nil {
		f.OwnersMin = v
	}
	if v, err := strconv.ParseInt(c.Query("owners_max"), 10, 64); err == nil {
		f.OwnersMax = v
	}
	if v, err := strconv.Atoi(c.Query("min_reviews")); err == nil {
		f.MinReviews = v
	}

	return f
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// endregion

// GetDashboard godoc
// @Summary      Render the interactive dashboard
// @Description  Applies the filter constraints and returns summary metrics, top-10 charts, and breakdowns over the matching games.
// @Tags         dashboard
// @Produce      json
// @Param        genres      query  string  false  "Comma-separated genre names (any match)"
// @Param        game_types  query  string  false  "Comma-separated game types"
// @Param        price_min   query  number  false  "Minimum price"
// @Param        price_max   query  number  false  "Maximum price"
// @Param        score_min   query  int     false  "Minimum metacritic score"
// @Param        score_max   query  int     false  "Maximum metacritic score"
// @Param        owners_min  query  int     false  "Minimum estimated owners (lower bound)"
// @Param        owners_max  query  int     false  "Maximum estimated owners (lower bound)"
// @Param        min_reviews query  int     false  "Minimum total review count"
// @Success      200  {object}  DashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	filter := parseFilter(c)
	matched := filter.Apply(h.table)

	if len(matched) == 0 {
		// An empty result is a valid render, not an error.
		c.JSON(http.StatusOK, DashboardResponse{
			Empty:                true,
			Message:              noResultsMessage,
			Filter:               newFilterEchoResponse(filter),
			TopByPositiveReviews: []GameRowResponse{},
			TopByOwners:          []GameRowResponse{},
			GameTypes:            []BreakdownEntryResponse{},
		})
		return
	}

	summary := dashboard.Summarize(matched)
	platforms := dashboard.SummarizePlatforms(matched)

	c.JSON(http.StatusOK, DashboardResponse{
		Filter:      newFilterEchoResponse(filter),
		ResultCount: len(matched),
		Summary: SummaryResponse{
			TotalGames:            summary.TotalGames,
			AveragePrice:          summary.AveragePrice,
			AverageMetacritic:     summary.AverageMetacritic,
			TotalOwnersLowerBound: summary.TotalOwnersLowerBound,
		},
		TopByPositiveReviews: newGameRowResponses(dashboard.TopN(matched, dashboard.SortByPctPosTotal, 10)),
		TopByOwners:          newGameRowResponses(dashboard.TopN(matched, dashboard.SortByOwners, 10)),
		Platforms: PlatformSupportResponse{
			Windows: platforms.Windows,
			Mac:     platforms.Mac,
			Linux:   platforms.Linux,
		},
		GameTypes: newBreakdownResponse(dashboard.GameTypeBreakdown(matched)),
	})
}

// GetFilteredGames godoc
// @Summary      Get the filtered game table
// @Description  Returns the rows matching the filter constraints, sorted and paginated for the data-table view.
// @Tags         dashboard
// @Produce      json
// @Param        genres      query  string  false  "Comma-separated genre names (any match)"
// @Param        game_types  query  string  false  "Comma-separated game types"
// @Param        price_min   query  number  false  "Minimum price"
// @Param        price_max   query  number  false  "Maximum price"
// @Param        score_min   query  int     false  "Minimum metacritic score"
// @Param        score_max   query  int     false  "Maximum metacritic score"
// @Param        owners_min  query  int     false  "Minimum estimated owners (lower bound)"
// @Param        owners_max  query  int     false  "Maximum estimated owners (lower bound)"
// @Param        min_reviews query  int     false  "Minimum total review count"
// @Param        sort_by     query  string  false  "Sort column"  Enums(pct_pos_total, metacritic_score, owners_lower_bound, price, num_reviews_total)  default(pct_pos_total)
// @Param        sort_order  query  string  false  "Sort order"   Enums(asc, desc)  default(desc)
// @Param        page        query  int     false  "Page number"  default(1)
// @Param        limit       query  int     false  "Items per page"  default(50)
// @Success      200  {object}  PaginatedGameRowResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /dashboard/games [get]
func (h *DashboardHandler) GetFilteredGames(c *gin.Context) {
	filter := parseFilter(c)

	sortKey := dashboard.SortKey(c.DefaultQuery("sort_by", string(dashboard.SortByPctPosTotal)))
	if !dashboard.ValidSortKey(sortKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by column"})
		return
	}
	ascending := c.DefaultQuery("sort_order", "desc") == "asc"

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	matched := dashboard.Sort(filter.Apply(h.table), sortKey, ascending)

	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(newGameRowResponses(matched[start:end]), int64(len(matched)), page, limit))
}

// GetFilterOptions godoc
// @Summary      Get filter option domains
// @Description  Returns the genre list, game types, and value bounds the filter controls should offer, plus dataset metadata.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  FilterOptionsResponse
// @Router       /filters [get]
func (h *DashboardHandler) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, FilterOptionsResponse{
		Genres:        h.table.Genres(),
		GameTypes:     h.table.GameTypes(),
		MaxPrice:      h.table.MaxPrice(),
		MaxReviews:    h.table.MaxReviews(),
		ScoreMin:      0,
		ScoreMax:      100,
		TotalGames:    h.table.Len(),
		LastRefreshed: h.table.RefreshedAt(),
	})
}

// GetGenreBreakdown godoc
// @Summary      Get the genre distribution
// @Description  Counts how many games carry each genre across the whole dataset, for the genre pie chart.
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  BreakdownEntryResponse
// @Router       /genres [get]
func (h *DashboardHandler) GetGenreBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, newBreakdownResponse(dashboard.GenreBreakdown(h.table.Records())))
}
