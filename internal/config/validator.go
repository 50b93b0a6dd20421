package config

import "fmt"

// Warnings lists settings that are valid but probably unintended
func (c *Config) Warnings() []string {
	var warnings []string

	if c.IsProduction() && c.LogFormat != "json" {
		warnings = append(warnings, fmt.Sprintf("%s is %q in production - json is expected by log collectors", EnvLogFormat, c.LogFormat))
	}

	if c.IsProduction() && c.LogLevel == "debug" {
		warnings = append(warnings, EnvLogLevel+" is debug in production")
	}

	if c.FailSilently {
		warnings = append(warnings, EnvFailSilently+" is set - invalid builder calls will be ignored without a report")
	}

	return warnings
}
