package config

import "github.com/lambda-feedback/dockerapp/util/conf"

// Config holds the settings shared by all commands.
type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// ConfigFile is an optional json or .env file read by the
	// command-specific configuration.
	ConfigFile string `conf:"config_file"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
}
