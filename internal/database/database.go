package database

import (
	"log"
	"os"
	"time"

	"gamescope/backend/internal/dataset"
	"gamescope/backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	// Run migrations
	err = DB.AutoMigrate(&models.Genre{}, &models.Game{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Seed mirrors the normalized table into the database. It runs once at
// startup; the mirror is never written to afterwards.
func Seed(table *dataset.Table) {
	genresByName := make(map[string]*models.Genre, len(table.Genres()))
	for _, name := range table.Genres() {
		genre := &models.Genre{Name: name}
		if err := DB.Create(genre).Error; err != nil {
			log.Fatalf("Failed to seed genre '%s': %v", name, err)
		}
		genresByName[name] = genre
	}

	records := table.Records()
	games := make([]*models.Game, 0, len(records))
	for _, r := range records {
		game := &models.Game{
			Name:                   r.Name,
			Price:                  r.Price,
			MetacriticScore:        r.MetacriticScore,
			PctPosTotal:            r.PctPosTotal,
			NumReviewsTotal:        r.NumReviewsTotal,
			AveragePlaytimeForever: r.AveragePlaytimeForever,
			OwnersLowerBound:       r.EstimatedOwnersLowerBound,
			GameType:               r.GameType,
			Windows:                r.Windows,
			Mac:                    r.Mac,
			Linux:                  r.Linux,
		}
		for _, g := range r.Genres {
			game.Genres = append(game.Genres, genresByName[g])
		}
		games = append(games, game)
	}

	if len(games) > 0 {
		if err := DB.CreateInBatches(games, 200).Error; err != nil {
			log.Fatalf("Failed to seed games: %v", err)
		}
	}

	log.Printf("Seeded %d games and %d genres.", len(games), len(genresByName))
}
