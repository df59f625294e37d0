package handler

import (
	"net/http"
	"strconv"

	"gamescope/backend/internal/database"
	"gamescope/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GenreResponse is a genre tag attached to a game.
type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newGenreResponse(genre models.Genre) GenreResponse {
	return GenreResponse{ID: genre.ID, Name: genre.Name}
}

// GameResponse is the browse view of one game in the catalog mirror.
type GameResponse struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	Price            float64         `json:"price"`
	MetacriticScore  int             `json:"metacritic_score"`
	PctPosTotal      float64         `json:"pct_pos_total"`
	NumReviewsTotal  int             `json:"num_reviews_total"`
	OwnersLowerBound int64           `json:"owners_lower_bound"`
	GameType         string          `json:"game_type"`
	Windows          int             `json:"windows"`
	Mac              int             `json:"mac"`
	Linux            int             `json:"linux"`
	Genres           []GenreResponse `json:"genres"`
}

func newGameResponse(game models.Game) GameResponse {
	var genreResponses []GenreResponse
	for _, genre := range game.Genres {
		if genre != nil {
			genreResponses = append(genreResponses, newGenreResponse(*genre))
		}
	}

	return GameResponse{
		ID:               game.ID,
		Name:             game.Name,
		Price:            game.Price,
		MetacriticScore:  game.MetacriticScore,
		PctPosTotal:      game.PctPosTotal,
		NumReviewsTotal:  game.NumReviewsTotal,
		OwnersLowerBound: game.OwnersLowerBound,
		GameType:         game.GameType,
		Windows:          game.Windows,
		Mac:              game.Mac,
		Linux:            game.Linux,
		Genres:           genreResponses,
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves details for a single game in the catalog mirror, including its genres.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.Preload("Genres").First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated list of games from the catalog mirror, with optional name search and genre filtering.
// @Tags         games
// @Produce      json
// @Param        q       query     string  false  "Search query for game name"
// @Param        genres  query     string  false  "Comma-separated list of genre names"
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	offset := (page - 1) * limit
	searchQuery := c.Query("q")
	genreNames := splitCommaSeparated(c.Query("genres"))

	// Fast path: no filters, let the generic helper page through the table.
	if searchQuery == "" && len(genreNames) == 0 {
		paginated, err := Paginate[models.Game](database.DB.Preload("Genres").Order("id"), page, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
			return
		}
		response := make([]GameResponse, 0, len(paginated.Data))
		for _, game := range paginated.Data {
			response = append(response, newGameResponse(game))
		}
		c.JSON(http.StatusOK, NewPaginatedResponse(response, paginated.Meta.TotalItems, page, limit))
		return
	}

	// Create the base query for both counting and data retrieval
	dbQuery := database.DB.Model(&models.Game{})

	// Filter by name
	if searchQuery != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+searchQuery+"%")
	}

	// Filter by genres
	if len(genreNames) > 0 {
		dbQuery = dbQuery.Joins("JOIN game_genres gg ON gg.game_id = games.id").
			Joins("JOIN genres g ON g.id = gg.genre_id").
			Where("g.name IN (?)", genreNames).
			Group("games.id")
	}

	// --- Count total items ---
	// A separate query is needed for counting when using GROUP BY
	// to avoid GORM's default behavior which can be incorrect.
	var totalItems int64
	countQuery := database.DB.Model(&models.Game{})
	if searchQuery != "" {
		countQuery = countQuery.Where("name LIKE ?", "%"+searchQuery+"%")
	}
	if len(genreNames) > 0 {
		// For a grouped query, count the number of distinct groups through
		// a subquery.
		subQuery := countQuery.Joins("JOIN game_genres gg ON gg.game_id = games.id").
			Joins("JOIN genres g ON g.id = gg.genre_id").
			Where("g.name IN (?)", genreNames).
			Group("games.id").Select("games.id")

		if err := database.DB.Table("(?) as sub", subQuery).Count(&totalItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count games"})
			return
		}
	} else {
		if err := countQuery.Count(&totalItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count games"})
			return
		}
	}

	// --- Fetch paginated data ---
	var games []models.Game
	err = dbQuery.Preload("Genres").Order("games.id").Offset(offset).Limit(limit).Find(&games).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}
