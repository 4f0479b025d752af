package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// MetricsPort serves /metrics and /healthz; 0 disables the listener.
	MetricsPort     int           `mapstructure:"metrics_port" validate:"gte=0,lt=65536"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// AuthConfig contains the shared secret clients send in X-API-Key.
type AuthConfig struct {
	APIKey string `mapstructure:"api_key" validate:"required"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	// ModelName overrides the model for every task; empty keeps the default.
	ModelName string `mapstructure:"model_name"`
	// BaseURL overrides the Gemini endpoint (proxies, tests).
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// ArticlePromptTemplate is the external article prompt. When empty it is
	// read from ArticlePromptTemplatePath during Load.
	ArticlePromptTemplate     string `mapstructure:"article_prompt_template" validate:"required"`
	ArticlePromptTemplatePath string `mapstructure:"article_prompt_template_path"`

	MaxAttempts    int           `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay" validate:"gt=0"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
}

// CORSConfig holds the literal CORS values echoed on responses.
type CORSConfig struct {
	AllowOrigin string `mapstructure:"allow_origin" validate:"required"`
}
