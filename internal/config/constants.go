package config

import "time"

const (
	// Configuration file paths
	ConfigPathRules       = "configs/rules.yaml"
	ConfigPathRulesSchema = "configs/schemas/rules.schema.json"
)

// Defaults
const (
	DefaultPort                  = 8080
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultEnvironment           = "dev"
	DefaultServiceName           = "color-rush"
	DefaultVersion               = "dev"
	DefaultSessionCapacity       = 1000
	DefaultSessionTTL            = 30 * time.Minute
	DefaultSessionReportInterval = 15 * time.Second
	DefaultCORSAllowedOrigins    = "*"
)

// Environment variable names
const (
	EnvSchemaVersion         = "ENV_SCHEMA_VERSION"
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvEnvironment           = "ENVIRONMENT"
	EnvServiceName           = "SERVICE_NAME"
	EnvVersion               = "VERSION"
	EnvRulesPath             = "RULES_PATH"
	EnvRulesSchemaPath       = "RULES_SCHEMA_PATH"
	EnvSessionCapacity       = "SESSION_CAPACITY"
	EnvSessionTTL            = "SESSION_TTL"
	EnvSessionReportInterval = "SESSION_REPORT_INTERVAL"
	EnvCORSAllowedOrigins    = "CORS_ALLOWED_ORIGINS"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
)
