package config

import (
	"log"
	"os"
	"strings"
)

// FallbackJWTSecret is the well-known signing secret the studio originally
// shipped with. Kept as the default so local setups work out of the box, but
// Load complains loudly whenever it is in use.
const FallbackJWTSecret = "blue-moon-studio-secret-key-2024"

// Config holds all process-wide configuration. It is built once in main and
// passed into the components that need it; nothing else reads the environment.
type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	Environment      string // development, staging, production
	AllowedOrigins   []string
	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string
	CloudinaryFolder string
}

// Load reads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		Port:             getEnv("PORT", "5050"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        getEnv("JWT_SECRET", FallbackJWTSecret),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AllowedOrigins:   splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		CloudinaryCloud:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder: getEnv("CLOUDINARY_FOLDER", "blue-moon-studio"),
	}

	if cfg.JWTSecret == FallbackJWTSecret {
		if cfg.IsProduction() {
			log.Println("WARNING: JWT_SECRET is not set, sessions are signed with the built-in fallback secret")
		} else {
			log.Println("Using fallback JWT secret for development")
		}
	}

	return cfg
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// CloudinaryEnabled reports whether the media endpoints can be served.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloud != "" && c.CloudinaryKey != "" && c.CloudinarySecret != ""
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
