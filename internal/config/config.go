package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	RulesPath       string
	RulesSchemaPath string

	SessionCapacity       int
	SessionTTL            time.Duration
	SessionReportInterval time.Duration

	CORSAllowedOrigins []string
	TrustedProxies     []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:              strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:             strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:           getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:           getEnv(EnvServiceName, DefaultServiceName),
		Version:               getEnv(EnvVersion, DefaultVersion),
		RulesPath:             getEnv(EnvRulesPath, ConfigPathRules),
		RulesSchemaPath:       getEnv(EnvRulesSchemaPath, ConfigPathRulesSchema),
		SessionCapacity:       getEnvAsInt(EnvSessionCapacity, DefaultSessionCapacity),
		SessionTTL:            getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),
		SessionReportInterval: getEnvAsDuration(EnvSessionReportInterval, DefaultSessionReportInterval),
		CORSAllowedOrigins:    getEnvAsList(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins),
		TrustedProxies:        getEnvAsList(EnvTrustedProxies, ""),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.SessionCapacity < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", EnvSessionCapacity, cfg.SessionCapacity)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", EnvSessionTTL, cfg.SessionTTL)
	}
	if cfg.SessionReportInterval <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", EnvSessionReportInterval, cfg.SessionReportInterval)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default for unset or unparsable values
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction reports whether the service runs in a production environment
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	}
	return false
}
