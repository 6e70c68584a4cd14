package config

import (
	"log/slog"
	"os"
)

// JwtKey signs and verifies session tokens. Populated by LoadAuthConfig.
var JwtKey []byte

func LoadAuthConfig() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET environment variable is not set")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}
