package config // package config loads application configuration from environment variables

import (
	"net" // net joins the host and port into a listen address
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every variable is optional: the defaults match
// the original deployment (bind 0.0.0.0:5000, dataset file next to the
// binary), so the service starts with an empty environment.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Host      string // HTTP host to bind
	Port      string // HTTP port to listen on
	DataPath  string // path to the labels dataset JSON file
	LogLevel  string // zap log level ("debug", "info", ...)
	LogFormat string // zap encoder ("console" or "json")
}

// Load reads configuration values from environment variables and returns a
// Config.  Unset or empty variables fall back to their defaults; Load never
// fails.
func Load() Config {
	return Config{
		Env:       getenv("APP_ENV", "dev"),
		Host:      getenv("HTTP_HOST", "0.0.0.0"),
		Port:      getenv("HTTP_PORT", "5000"),
		DataPath:  getenv("DATA_PATH", "labels_by_input.json"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "console"),
	}
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// getenv retrieves the value of an environment variable, returning def when
// the variable is unset or empty.
func getenv(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	return v
}
