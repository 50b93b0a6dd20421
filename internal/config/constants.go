package config

import "errors"

// ErrInvalidConfig wraps every configuration validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variable names
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvFailSilently   = "ITEM_FAIL_SILENTLY"
	EnvColorCacheSize = "COLOR_CACHE_SIZE"
	EnvAliasesPath    = "ITEM_ALIASES_PATH"
)

// Defaults
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultColorCacheSize = 512
)

// ConfigPathItemAliases is the alias file used when ITEM_ALIASES_PATH is unset
const ConfigPathItemAliases = "configs/items/aliases.json"
