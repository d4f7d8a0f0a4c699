// Package config loads and validates application configuration from
// environment variables and an optional config file.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Task     TaskConfig     `mapstructure:"task"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication and token settings.
type AuthConfig struct {
	JWTSecret              string `mapstructure:"jwt_secret"               validate:"required,min=32"`
	TokenLifetimeMinutes   int    `mapstructure:"token_lifetime_minutes"   validate:"required,gt=0"`
	RefreshLifetimeMinutes int    `mapstructure:"refresh_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost             int    `mapstructure:"bcrypt_cost"              validate:"omitempty,gte=4,lte=31"`
}

// LLMConfig contains settings for the word-content generator. The section is
// optional: without an API key the server runs with generation disabled.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"omitempty,gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"omitempty,gte=1,lte=60"`
}

// TaskConfig contains settings for the background worker pool.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"omitempty,gt=0,lte=32"`
	QueueSize   int `mapstructure:"queue_size"   validate:"omitempty,gt=0"`
}

// Enabled reports whether content generation is configured.
func (c LLMConfig) Enabled() bool {
	return c.GeminiAPIKey != ""
}
