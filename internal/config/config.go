package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	ListenAddr       string  `mapstructure:"LISTEN_ADDR"`
	DatabaseURL      string  `mapstructure:"DATABASE_URL"`
	DataPath         string  `mapstructure:"DATA_PATH"`
	PieDataPath      string  `mapstructure:"PIE_DATA_PATH"`
	WeatherLatitude  float64 `mapstructure:"WEATHER_LATITUDE"`
	WeatherLongitude float64 `mapstructure:"WEATHER_LONGITUDE"`
	WeatherCacheTTL  int     `mapstructure:"WEATHER_CACHE_TTL"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("LISTEN_ADDR", ":8080")
	// In-memory sqlite: the games mirror lives only for the process lifetime.
	viper.SetDefault("DATABASE_URL", "file::memory:?cache=shared")
	viper.SetDefault("DATA_PATH", "data/sample.csv")
	viper.SetDefault("PIE_DATA_PATH", "data/pie_demo.csv")
	// Denver, CO
	viper.SetDefault("WEATHER_LATITUDE", 39.7392)
	viper.SetDefault("WEATHER_LONGITUDE", -104.9903)
	// Seconds between refreshes of the upstream forecast.
	viper.SetDefault("WEATHER_CACHE_TTL", 600)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
