package config

import (
	"fmt"
	"os"
	"strconv"

	"goamb/domain/ambtest"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Test     TestConfig
	Data     DataConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection settings. Persistence is
// optional; with an empty URL, results are kept in memory only.
type DatabaseConfig struct {
	URL string
}

// TestConfig holds default permutation-test parameters
type TestConfig struct {
	Alpha        float64
	Permutations int
	Seed         int64
	ExactCeiling int
}

// DataConfig holds sample file settings for file-backed runs
type DataConfig struct {
	SampleFile string
	SheetX     string
	SheetY     string
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Test: TestConfig{
			Alpha:        getEnvFloat("TEST_ALPHA", ambtest.DefaultAlpha),
			Permutations: getEnvInt("TEST_PERMUTATIONS", ambtest.DefaultPermutations),
			Seed:         int64(getEnvInt("TEST_SEED", ambtest.DefaultSeed)),
			ExactCeiling: getEnvInt("TEST_EXACT_CEILING", ambtest.DefaultExactCeiling),
		},
		Data: DataConfig{
			SampleFile: getEnv("SAMPLE_FILE", ""),
			SheetX:     getEnv("SAMPLE_SHEET_X", "X"),
			SheetY:     getEnv("SAMPLE_SHEET_Y", "Y"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Test.Alpha <= 0 || c.Test.Alpha >= 1 {
		return fmt.Errorf("TEST_ALPHA %v must be inside (0, 1)", c.Test.Alpha)
	}
	if c.Test.Permutations <= 0 {
		return fmt.Errorf("TEST_PERMUTATIONS %d must be positive", c.Test.Permutations)
	}
	if c.Test.ExactCeiling <= 0 {
		return fmt.Errorf("TEST_EXACT_CEILING %d must be positive", c.Test.ExactCeiling)
	}
	return nil
}

// Params returns the configured defaults as test parameters.
func (c *Config) Params() ambtest.Params {
	return ambtest.Params{
		Alpha:        c.Test.Alpha,
		Permutations: c.Test.Permutations,
		Seed:         c.Test.Seed,
		Mode:         ambtest.ModeAuto,
		ExactCeiling: c.Test.ExactCeiling,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
