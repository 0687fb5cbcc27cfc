package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini configuration.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// OpenWeatherMap API key; optional, itinerary prompts skip weather when empty.
	WeatherAPIKey string `mapstructure:"WEATHER_API_KEY"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisHistoryDB int    `mapstructure:"REDIS_HISTORY_DB"`

	// Chat history retention.
	HistoryTTLMinutes int `mapstructure:"HISTORY_TTL_MINUTES"`
	HistoryMaxTurns   int `mapstructure:"HISTORY_MAX_TURNS"`
}

var AppConfig Config

// RouteKeywords is the keyword lookup table that drives specialist routing.
// Itinerary keywords are checked first so "plan a trip with hotels" still
// routes to the planner rather than the hotel specialist.
var RouteKeywords = map[string][]string{
	"itinerary": {"plan", "itinerary", "trip", "days", "activities", "visit"},
	"hotel":     {"hotel", "hotels", "stay", "accommodation", "room", "resort"},
	"flight":    {"flight", "flights", "fly", "airline", "airfare", "ticket"},
}

func LoadConfig() {
	// A local .env file wins over nothing, loses to real environment variables.
	_ = godotenv.Load()

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_HISTORY_DB", 0)
	viper.SetDefault("HISTORY_TTL_MINUTES", 30)
	viper.SetDefault("HISTORY_MAX_TURNS", 50)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The keyword table may be overridden from the config file, e.g.
	// ROUTE_KEYWORDS: {hotel: [...], flight: [...], itinerary: [...]}.
	if kw := viper.GetStringMapStringSlice("ROUTE_KEYWORDS"); len(kw) > 0 {
		RouteKeywords = kw
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
