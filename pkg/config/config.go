package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the recipe generator.
type Config struct {
	// HTTP server settings
	Address     string `env:"CHEF_ADDRESS"`
	Port        int    `env:"CHEF_PORT"`
	EnableCORS  bool   `env:"CHEF_ENABLE_CORS"`
	EnableXSRF  bool   `env:"CHEF_ENABLE_XSRF_PROTECTION"`
	CORSOrigins string `env:"CHEF_CORS_ORIGINS"`

	// Generation settings
	Temperature    float32       `env:"CHEF_TEMPERATURE"`
	MaxTokens      int32         `env:"CHEF_MAX_TOKENS"`
	RequestTimeout time.Duration `env:"CHEF_REQUEST_TIMEOUT"`

	// History store
	StorePath    string `env:"CHEF_STORE_PATH"`
	HistoryLimit int    `env:"CHEF_HISTORY_LIMIT"`

	// Logging settings
	LogLevel string `env:"CHEF_LOG_LEVEL"`
}

// Load builds the configuration from defaults, an optional .env file, and
// environment variables, in that order of precedence.
func Load(envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Address:        "0.0.0.0",
		Port:           8501,
		EnableCORS:     false,
		EnableXSRF:     false,
		CORSOrigins:    "*",
		Temperature:    0.8,
		MaxTokens:      2048,
		RequestTimeout: 2 * time.Minute,
		StorePath:      filepath.Join(os.TempDir(), "chef-history.db"),
		HistoryLimit:   50,
		LogLevel:       "info",
	}
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("CHEF_ADDRESS"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("CHEF_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("CHEF_ENABLE_CORS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableCORS = b
		}
	}
	if v := os.Getenv("CHEF_ENABLE_XSRF_PROTECTION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableXSRF = b
		}
	}
	if v := os.Getenv("CHEF_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = v
	}
	if v := os.Getenv("CHEF_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.Temperature = float32(f)
		}
	}
	if v := os.Getenv("CHEF_MAX_TOKENS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			cfg.MaxTokens = int32(n)
		}
	}
	if v := os.Getenv("CHEF_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("CHEF_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("CHEF_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("CHEF_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the essential fields only
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive")
	}
	validLogLevels := []string{"debug", "info", "warn", "error"}
	valid := false
	for _, level := range validLogLevels {
		if c.LogLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log_level must be one of %v", validLogLevels)
	}
	return nil
}

// ListenAddr returns the address:port pair the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}
