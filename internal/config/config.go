package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Ledger LedgerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// LedgerConfig holds the account rules and reporting limits
type LedgerConfig struct {
	MinimumBalance       decimal.Decimal
	DailyWithdrawalLimit decimal.Decimal
	HighBalanceThreshold decimal.Decimal
	IdempotencyTTL       time.Duration
	MaxStatement         int
	DefaultStatement     int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", "30s"),
		},
		Ledger: LedgerConfig{
			MinimumBalance:       getEnvAsDecimal("MIN_BALANCE", "1000"),
			DailyWithdrawalLimit: getEnvAsDecimal("DAILY_WITHDRAWAL_LIMIT", "50000"),
			HighBalanceThreshold: getEnvAsDecimal("HIGH_BALANCE_THRESHOLD", "5000"),
			MaxStatement:         getEnvAsInt("MAX_STATEMENT", 50),
			DefaultStatement:     getEnvAsInt("DEFAULT_STATEMENT", 10),
			IdempotencyTTL:       getEnvAsDuration("IDEMPOTENCY_TTL", "24h"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Ledger.MinimumBalance.IsNegative() {
		return fmt.Errorf("minimum balance cannot be negative, got %s", c.Ledger.MinimumBalance)
	}
	if !c.Ledger.DailyWithdrawalLimit.IsPositive() {
		return fmt.Errorf("daily withdrawal limit must be positive, got %s", c.Ledger.DailyWithdrawalLimit)
	}
	if c.Ledger.HighBalanceThreshold.IsNegative() {
		return fmt.Errorf("high balance threshold cannot be negative, got %s", c.Ledger.HighBalanceThreshold)
	}

	if c.Ledger.MaxStatement < 1 {
		return fmt.Errorf("max statement must be at least 1, got %d", c.Ledger.MaxStatement)
	}
	if c.Ledger.DefaultStatement < 1 || c.Ledger.DefaultStatement > c.Ledger.MaxStatement {
		return fmt.Errorf("default statement (%d) must be between 1 and max statement (%d)",
			c.Ledger.DefaultStatement, c.Ledger.MaxStatement)
	}

	if c.Ledger.IdempotencyTTL < 0 {
		return fmt.Errorf("idempotency ttl cannot be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	return nil
}

// Rules returns the limits every new account enforces
func (c *LedgerConfig) Rules() models.Rules {
	return models.Rules{
		MinimumBalance:       c.MinimumBalance,
		DailyWithdrawalLimit: c.DailyWithdrawalLimit,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDecimal(key, defaultValue string) decimal.Decimal {
	value, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		return decimal.RequireFromString(defaultValue)
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
