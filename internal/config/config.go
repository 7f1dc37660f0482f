package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from the environment.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	// CommandPrefix is the default invocation prefix; guilds may override it
	// with the prefix command.
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
	StoragePath   string `env:"STORAGE_PATH" envDefault:"data/herald.json"`
	DeveloperID   string `env:"DEVELOPER_ID"`

	// Rate limiting for the per-user dispatch filter.
	RatePerMinute int `env:"RATE_PER_MINUTE" envDefault:"20"`
	RateBurst     int `env:"RATE_BURST" envDefault:"5"`
}

// New loads .env if present and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// IsDeveloper reports whether a user ID matches the configured developer.
func IsDeveloper(cfg *Config, userID string) bool {
	return cfg != nil && cfg.DeveloperID != "" && cfg.DeveloperID == userID
}
