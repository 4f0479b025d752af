package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SEOGEN_AUTH_API_KEY.
const EnvPrefix = "SEOGEN"

// keys lists every setting so each can be bound to its environment variable
// even when neither a default nor a config file mentions it.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.metrics_port",
	"server.shutdown_timeout",
	"auth.api_key",
	"llm.gemini_api_key",
	"llm.model_name",
	"llm.base_url",
	"llm.article_prompt_template",
	"llm.article_prompt_template_path",
	"llm.max_attempts",
	"llm.retry_base_delay",
	"llm.request_timeout",
	"cors.allow_origin",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := loadArticleTemplate(&cfg.LLM); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("llm.max_attempts", 3)
	v.SetDefault("llm.retry_base_delay", "1s")
	v.SetDefault("llm.request_timeout", "60s")
	v.SetDefault("cors.allow_origin", "*")
}

// loadArticleTemplate fills ArticlePromptTemplate from its file when only the
// path is configured.
func loadArticleTemplate(cfg *LLMConfig) error {
	if cfg.ArticlePromptTemplate != "" || cfg.ArticlePromptTemplatePath == "" {
		return nil
	}

	content, err := os.ReadFile(cfg.ArticlePromptTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read article prompt template from %s: %w",
			cfg.ArticlePromptTemplatePath, err)
	}
	cfg.ArticlePromptTemplate = string(content)
	return nil
}
