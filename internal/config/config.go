package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort         string
	DatabaseDSN      string
	JWTSecret        string
	AdminPin         string
	CORSOrigins      string
	GalleryImagePath string // directory where uploaded gallery images are stored
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=evanails port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		AdminPin:         getEnv("ADMIN_PIN", ""),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		GalleryImagePath: getEnv("GALLERY_IMAGE_PATH", "./gallery-images"), // default for local development
	}

	// Production safety checks
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment variable is not set! It is required to sign admin session tokens.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters long!")
	}
	if cfg.AdminPin == "" {
		log.Fatal("[FATAL] ADMIN_PIN environment variable is not set! The admin panel cannot be unlocked without it.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=evanails port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is using the default value, set your own Postgres connection string for production.")
	}
	if cfg.CORSOrigins == "http://localhost:3000" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
