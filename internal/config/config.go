package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/ItemBuilder_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	LogLevel       string `validate:"oneof=debug info warn warning error"`
	LogFormat      string `validate:"oneof=text json"`
	Environment    string `validate:"required"`
	FailSilently   bool
	ColorCacheSize int    `validate:"min=1,max=1048576"`
	AliasesPath    string `validate:"omitempty,endswith=.json"`
}

// Load reads the configuration from environment variables, after loading a
// .env file if one exists
func Load() (*Config, error) {
	// Real env vars may be set instead of a .env file
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		FailSilently:   getEnvAsBool(EnvFailSilently, false),
		ColorCacheSize: getEnvAsInt(EnvColorCacheSize, DefaultColorCacheSize),
		AliasesPath:    getEnv(EnvAliasesPath, ConfigPathItemAliases),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoggerConfig derives the logger settings
func (c *Config) LoggerConfig(version string) logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, logger.DefaultServiceName, version, c.Environment, c.LogLevel == logger.LogLevelDebug)
}

// IsProduction reports whether the environment is a production one
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case logger.EnvironmentProduction, "production":
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default when the value is missing or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

var validate = validator.New()

// Validate checks the config field constraints
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
