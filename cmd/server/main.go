package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"gamescope/backend/internal/config"
	"gamescope/backend/internal/database"
	"gamescope/backend/internal/dataset"
	"gamescope/backend/internal/handler"
	"gamescope/backend/internal/weather"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamescope/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GameScope API
// @version         1.0
// @description     Dashboard API over a 2000-game Steam dataset sample.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// Load and normalize the games dataset. A missing file or wrong schema
	// is fatal; anything wrong with individual rows is not.
	table, err := dataset.Load(config.AppConfig.DataPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	// Mirror the table into the in-memory database for the browse endpoints.
	database.Connect(config.AppConfig.DatabaseURL)
	database.Seed(table)

	dashboards := handler.NewDashboardHandler(table)
	forecasts := handler.NewWeatherHandler(weather.NewClient(
		config.AppConfig.WeatherLatitude,
		config.AppConfig.WeatherLongitude,
		time.Duration(config.AppConfig.WeatherCacheTTL)*time.Second,
	))

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Interactive dashboard
		apiV1.GET("/dashboard", dashboards.GetDashboard)
		apiV1.GET("/dashboard/games", dashboards.GetFilteredGames)
		apiV1.GET("/filters", dashboards.GetFilterOptions)
		apiV1.GET("/genres", dashboards.GetGenreBreakdown)

		// EDA gallery
		apiV1.GET("/eda/price-reception", dashboards.GetPriceReception)
		apiV1.GET("/eda/critics-vs-users", dashboards.GetCriticsVsUsers)
		apiV1.GET("/eda/owners-by-game-type", dashboards.GetOwnersByGameType)
		apiV1.GET("/eda/playtime-per-dollar", dashboards.GetPlaytimePerDollar)

		// Catalog browse (sqlite mirror)
		apiV1.GET("/games", handler.GetGames)
		apiV1.GET("/games/:id", handler.GetGameByID)

		// Static and demo pages
		apiV1.GET("/bio", handler.GetBio)
		apiV1.GET("/pie", handler.GetPieDemo)
		apiV1.GET("/weather", forecasts.GetWeather)
	}

	fmt.Println("Server is running on " + config.AppConfig.ListenAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
