package utils

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the servers need. Values come from VANQUISH_*
// environment variables with development defaults baked in; the character
// API key default mirrors the legacy app's bundled key behavior.
type Config struct {
	HTTPAddr string
	DBPath   string

	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration

	CharacterAPIURL string
	CharacterAPIKey string
	ComicsAPIURL    string
}

func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("vanquish")
	v.AutomaticEnv()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("jwt_secret", "dev-secret-change-me")
	v.SetDefault("jwt_issuer", "vanquish")
	v.SetDefault("jwt_ttl_hours", 24)
	v.SetDefault("character_api_url", "https://comicvine.gamespot.com/api")
	// Dev fallback key so the app degrades to fallback data instead of
	// refusing to start. Override in any real deployment.
	v.SetDefault("character_api_key", "dev-key-change-me")
	v.SetDefault("comics_api_url", "https://comicbooks-api.onrender.com/api")

	ttl := v.GetInt("jwt_ttl_hours")
	if ttl <= 0 {
		ttl = 24
	}

	return Config{
		HTTPAddr:        v.GetString("http_addr"),
		DBPath:          v.GetString("db_path"),
		JWTSecret:       v.GetString("jwt_secret"),
		JWTIssuer:       v.GetString("jwt_issuer"),
		JWTDuration:     time.Duration(ttl) * time.Hour,
		CharacterAPIURL: v.GetString("character_api_url"),
		CharacterAPIKey: v.GetString("character_api_key"),
		ComicsAPIURL:    v.GetString("comics_api_url"),
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".vanquish", "data.db")
}
