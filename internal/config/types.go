// Package config provides configuration management for the calculator CLI
// and HTTP server.
package config

import "time"

// Config holds all configuration options.
type Config struct {
	Format    string       `koanf:"format"`
	Verbose   bool         `koanf:"verbose"`
	LogLevel  string       `koanf:"log_level"`
	LogFormat string       `koanf:"log_format"`
	Server    ServerConfig `koanf:"server"`
	REPL      REPLConfig   `koanf:"repl"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// REPLConfig holds configuration for the interactive prompt.
type REPLConfig struct {
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`
}
