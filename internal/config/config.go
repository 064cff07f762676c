// Package config reads the application configuration from environment
// variables, with .env file support for local runs.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir      string
	DBPath       string
	FitDir       string
	HTTPAddr     string
	ScanSchedule string

	// Athlete measurements used when importing FIT files, which carry
	// neither weight nor height.
	AthleteWeightKG float64
	AthleteHeightCM float64
}

// Load reads the configuration. A missing .env file is fine; system
// environment variables alone are enough.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		DataDir:      getenv("DATA_DIR", "./data"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8888"),
		ScanSchedule: getenv("SCAN_SCHEDULE", "@hourly"),
	}

	cfg.DBPath = getenv("DB_PATH", filepath.Join(cfg.DataDir, "ftracker.db"))
	cfg.FitDir = getenv("FIT_DIR", filepath.Join(cfg.DataDir, "fit"))

	var err error
	if cfg.AthleteWeightKG, err = getenvFloat("ATHLETE_WEIGHT_KG", 75); err != nil {
		return nil, err
	}
	if cfg.AthleteHeightCM, err = getenvFloat("ATHLETE_HEIGHT_CM", 180); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
