package config

import "time"

// Default values for configuration.
const (
	DefaultFormat          = "%g"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultAddr            = "127.0.0.1:5000"
	DefaultOrigin          = "http://localhost:3000"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultPrompt          = "calc> "
)

// EnvPrefix is the prefix of environment variables that set configuration,
// e.g. CALC_LOG_LEVEL or CALC_SERVER__ADDR.
const EnvPrefix = "CALC_"

// configNames are the file names searched for in the working directory when
// no config file is given.
var configNames = []string{"calc.yaml", "calc.yml"}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"format":                  DefaultFormat,
		"verbose":                 false,
		"log_level":               DefaultLogLevel,
		"log_format":              DefaultLogFormat,
		"server.addr":             DefaultAddr,
		"server.allowed_origins":  []string{DefaultOrigin},
		"server.read_timeout":     DefaultReadTimeout,
		"server.write_timeout":    DefaultWriteTimeout,
		"server.shutdown_timeout": DefaultShutdownTimeout,
		"repl.prompt":             DefaultPrompt,
		"repl.history_file":       "",
	}
}
