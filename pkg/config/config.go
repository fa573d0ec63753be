package config

import (
	"fmt"
	"os"
	"strconv"

	"sudokucore/internal/grid"
	"sudokucore/pkg/constants"
)

// Config holds the server/CLI's environment-derived settings. Grounded
// on the teacher's getEnv fallback pattern; the JWT-secret gate is
// dropped since this API has no auth surface (§ Non-goals).
type Config struct {
	Port       string
	GridSize   int
	EmptyRate  float64
	Seed       int64
	RandomSeed bool
}

// Load reads configuration from environment variables, falling back to
// package defaults. Returns an error if an overridden value is out of
// range.
func Load() (*Config, error) {
	size, err := getEnvInt("SUDOKU_GRID_SIZE", constants.DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("SUDOKU_GRID_SIZE: %w", err)
	}
	if !grid.CheckSize(size) {
		return nil, fmt.Errorf("SUDOKU_GRID_SIZE=%d is not an allowed grid size", size)
	}

	rate, err := getEnvFloat("SUDOKU_EMPTY_RATE", constants.EmptyRate)
	if err != nil {
		return nil, fmt.Errorf("SUDOKU_EMPTY_RATE: %w", err)
	}
	if rate <= 0 || rate >= 1 {
		return nil, fmt.Errorf("SUDOKU_EMPTY_RATE=%v must be in (0,1)", rate)
	}

	seedStr := os.Getenv("SUDOKU_SEED")
	var seed int64
	randomSeed := seedStr == ""
	if !randomSeed {
		seed, err = strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SUDOKU_SEED: %w", err)
		}
	}

	return &Config{
		Port:       getEnv("PORT", constants.DefaultPort),
		GridSize:   size,
		EmptyRate:  rate,
		Seed:       seed,
		RandomSeed: randomSeed,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	return strconv.Atoi(val)
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(val, 64)
}
