package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Reservation service configuration.
	ReservationBaseURL string `mapstructure:"RESERVATION_BASE_URL"`
	UpstreamTimeoutMS  int    `mapstructure:"UPSTREAM_TIMEOUT_MS"`

	// The recommendation engine runs as a separate local process.
	RecommendationBaseURL string `mapstructure:"RECOMMENDATION_BASE_URL"`
	BroadcastURL          string `mapstructure:"BROADCAST_URL"`

	// ElevenLabs text-to-speech configuration.
	ElevenLabsAPIKey  string `mapstructure:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string `mapstructure:"ELEVENLABS_VOICE_ID"`
}

var AppConfig Config

func LoadConfig() {
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
	viper.SetDefault("RESERVATION_BASE_URL", "https://hackatum25.sixt.io/api")
	viper.SetDefault("UPSTREAM_TIMEOUT_MS", 10000)
	viper.SetDefault("RECOMMENDATION_BASE_URL", "http://127.0.0.1:9000/api")
	viper.SetDefault("BROADCAST_URL", "http://127.0.0.1:9000/trigger-broadcast")
	viper.SetDefault("ELEVENLABS_API_KEY", "")
	viper.SetDefault("ELEVENLABS_VOICE_ID", "6IwYbsNENZgAB1dtBZDp")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// UpstreamTimeout returns the bounded wait applied to each upstream call.
func UpstreamTimeout() time.Duration {
	return time.Duration(AppConfig.UpstreamTimeoutMS) * time.Millisecond
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
