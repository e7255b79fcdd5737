package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the configuration for values that can't be used.
func (c *Config) Validate() error {
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level %q: must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log_format %q: must be one of %s", c.LogFormat, strings.Join(validLogFormats, ", "))
	}
	if c.Format == "" {
		return fmt.Errorf("format must not be empty")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
