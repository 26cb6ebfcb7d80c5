package config

import (
	"fmt"
	"os"
	"strconv"

	"app/forecast"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
type Config struct {
	JWTSecret             string
	DashboardEmail        string
	DashboardPasswordHash string
	GeminiAPIKey          string
	LowStockThreshold     int
	AtRiskThreshold       float64
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from environment variables. Thresholds fall
// back to the dashboard defaults when unset.
func Load() error {
	AppConfig = Config{
		JWTSecret:             os.Getenv("JWT_SECRET"),
		DashboardEmail:        os.Getenv("DASHBOARD_EMAIL"),
		DashboardPasswordHash: os.Getenv("DASHBOARD_PASSWORD_HASH"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		LowStockThreshold:     forecast.DefaultLowStockThreshold,
		AtRiskThreshold:       forecast.DefaultAtRiskThreshold,
	}

	if raw := os.Getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("LOW_STOCK_THRESHOLD must be an integer, got %q", raw)
		}
		AppConfig.LowStockThreshold = v
	}

	if raw := os.Getenv("AT_RISK_THRESHOLD"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("AT_RISK_THRESHOLD must be a number, got %q", raw)
		}
		AppConfig.AtRiskThreshold = v
	}

	return nil
}
