package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"gamescope/backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedBrowseDB sync.Once

func browseRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seedBrowseDB.Do(func() {
		database.Connect("file:browse_test?mode=memory&cache=shared")
		database.Seed(testTable())
	})

	router := gin.New()
	router.GET("/api/v1/games", GetGames)
	router.GET("/api/v1/games/:id", GetGameByID)
	return router
}

func TestGetGames(t *testing.T) {
	router := browseRouter(t)

	var resp PaginatedGameResponse
	w := doGet(t, router, "/api/v1/games", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), resp.Meta.TotalItems)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "Cheap Indie", resp.Data[0].Name)
	assert.NotEmpty(t, resp.Data[0].Genres)
}

func TestGetGamesNameSearch(t *testing.T) {
	router := browseRouter(t)

	var resp PaginatedGameResponse
	w := doGet(t, router, "/api/v1/games?q=shooter", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Free Shooter", resp.Data[0].Name)
}

func TestGetGamesGenreFilter(t *testing.T) {
	router := browseRouter(t)

	var resp PaginatedGameResponse
	w := doGet(t, router, "/api/v1/games?genres=Action", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), resp.Meta.TotalItems)
	require.Len(t, resp.Data, 2)
	for _, game := range resp.Data {
		genreNames := make([]string, 0, len(game.Genres))
		for _, g := range game.Genres {
			genreNames = append(genreNames, g.Name)
		}
		assert.Contains(t, genreNames, "Action")
	}
}

func TestGetGamesPagination(t *testing.T) {
	router := browseRouter(t)

	var resp PaginatedGameResponse
	w := doGet(t, router, "/api/v1/games?page=2&limit=2", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(3), resp.Meta.TotalItems)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestGetGameByID(t *testing.T) {
	router := browseRouter(t)

	var resp GameResponse
	w := doGet(t, router, "/api/v1/games/1", &resp)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), resp.ID)
	assert.NotEmpty(t, resp.Name)
}

func TestGetGameByIDNotFound(t *testing.T) {
	router := browseRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/games/99999", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Game not found", resp.Error)
}
