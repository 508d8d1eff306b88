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

	// MongoDB configuration.
	MongoURL string `mapstructure:"MONGO_URL"`
	DBName   string `mapstructure:"DB_NAME"`

	// Comma-separated list of allowed CORS origins.
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Delegated auth bridge endpoint.
	AuthBridgeURL string `mapstructure:"AUTH_BRIDGE_URL"`

	// Session lifetime for issued tokens.
	SessionTTL time.Duration `mapstructure:"SESSION_TTL"`

	// Redis configuration (session validation cache).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Gemini API key for the chat assistant.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Outbound mail (problem reports). Optional: when the credentials are
	// missing, report mail degrades to a logged failure.
	GmailAddress     string `mapstructure:"GMAIL_ADDRESS"`
	GmailAppPassword string `mapstructure:"GMAIL_APP_PASSWORD"`
	RecipientEmail   string `mapstructure:"RECIPIENT_EMAIL"`
	SMTPServer       string `mapstructure:"SMTP_SERVER"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
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
	viper.SetDefault("MONGO_URL", "")
	viper.SetDefault("DB_NAME", "")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("AUTH_BRIDGE_URL", "")
	viper.SetDefault("SESSION_TTL", "168h")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("SMTP_SERVER", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Mail is the only optional external collaborator; everything else is
	// required before the process starts serving.
	if AppConfig.MongoURL == "" {
		log.Fatal("MONGO_URL is required")
	}
	if AppConfig.DBName == "" {
		log.Fatal("DB_NAME is required")
	}
	if AppConfig.AuthBridgeURL == "" {
		log.Fatal("AUTH_BRIDGE_URL is required")
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
