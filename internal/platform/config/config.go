package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port             string
	IsProduction     bool
	AllowedOrigins   []string
	RateLimit        string // ulule formatted, e.g. "120-M"
	EnableRateReload bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	// Vite dev server origins; override in deployment.
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("ENABLE_RATE_RELOAD", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	originsStr := viper.GetString("ALLOWED_ORIGINS")
	for _, origin := range strings.Split(originsStr, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		log.Println("Warning: ALLOWED_ORIGINS is empty. Cross-origin requests will be rejected.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "120-M"
		log.Printf("Warning: RATE_LIMIT environment variable not set. Defaulting to %s\n", cfg.RateLimit)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableRateReload = viper.GetBool("ENABLE_RATE_RELOAD")
	if cfg.EnableRateReload {
		log.Println("Warning: ENABLE_RATE_RELOAD is set. The state rate table can be replaced over HTTP.")
	}

	return cfg, nil
}
