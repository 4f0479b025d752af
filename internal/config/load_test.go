package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value leaves the variable unset, which viper treats as absent.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"SEOGEN_AUTH_API_KEY":                     "client-secret",
		"SEOGEN_LLM_GEMINI_API_KEY":               "test-api-key",
		"SEOGEN_LLM_ARTICLE_PROMPT_TEMPLATE":      "Write about [body.title]",
		"SEOGEN_LLM_ARTICLE_PROMPT_TEMPLATE_PATH": "",
	}
}

// TestLoadDefaults verifies that Load fills in defaults when only the
// required settings are provided.
func TestLoadDefaults(t *testing.T) {
	env := requiredEnv()
	env["SEOGEN_SERVER_PORT"] = ""
	env["SEOGEN_SERVER_LOG_LEVEL"] = ""
	setupEnv(t, env)

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, time.Second, cfg.LLM.RetryBaseDelay)
	assert.Equal(t, 60*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, "*", cfg.CORS.AllowOrigin)
	assert.Empty(t, cfg.LLM.ModelName, "Model name should default to empty so the registry default applies")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	env := requiredEnv()
	env["SEOGEN_SERVER_PORT"] = "9000"
	env["SEOGEN_SERVER_LOG_LEVEL"] = "debug"
	env["SEOGEN_SERVER_METRICS_PORT"] = "0"
	env["SEOGEN_LLM_MODEL_NAME"] = "gemini-2.0-flash"
	env["SEOGEN_LLM_BASE_URL"] = "http://localhost:8089"
	env["SEOGEN_LLM_MAX_ATTEMPTS"] = "5"
	env["SEOGEN_LLM_RETRY_BASE_DELAY"] = "250ms"
	env["SEOGEN_LLM_REQUEST_TIMEOUT"] = "30s"
	env["SEOGEN_CORS_ALLOW_ORIGIN"] = "https://example.com"
	setupEnv(t, env)

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 0, cfg.Server.MetricsPort)
	assert.Equal(t, "client-secret", cfg.Auth.APIKey)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, "http://localhost:8089", cfg.LLM.BaseURL)
	assert.Equal(t, "Write about [body.title]", cfg.LLM.ArticlePromptTemplate)
	assert.Equal(t, 5, cfg.LLM.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.LLM.RetryBaseDelay)
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, "https://example.com", cfg.CORS.AllowOrigin)
}

func TestLoadArticleTemplateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.txt")
	require.NoError(t, os.WriteFile(path, []byte("Article for [body.title] on [YYYY-MM-DD]"), 0o600))

	env := requiredEnv()
	env["SEOGEN_LLM_ARTICLE_PROMPT_TEMPLATE"] = ""
	env["SEOGEN_LLM_ARTICLE_PROMPT_TEMPLATE_PATH"] = path
	setupEnv(t, env)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "Article for [body.title] on [YYYY-MM-DD]", cfg.LLM.ArticlePromptTemplate)
}

func TestLoadArticleTemplateFileMissing(t *testing.T) {
	env := requiredEnv()
	env["SEOGEN_LLM_ARTICLE_PROMPT_TEMPLATE"] = ""
	env["SEOGEN_LLM_ARTICLE_PROMPT_TEMPLATE_PATH"] = filepath.Join(t.TempDir(), "missing.txt")
	setupEnv(t, env)

	cfg, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read article prompt template")
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing API key",
			envVars: map[string]string{
				"SEOGEN_AUTH_API_KEY": "",
			},
		},
		{
			name: "Missing Gemini API key",
			envVars: map[string]string{
				"SEOGEN_LLM_GEMINI_API_KEY": "",
			},
		},
		{
			name: "Missing article template",
			envVars: map[string]string{
				"SEOGEN_LLM_ARTICLE_PROMPT_TEMPLATE": "",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"SEOGEN_SERVER_PORT": "999999",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"SEOGEN_SERVER_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "Zero max attempts",
			envVars: map[string]string{
				"SEOGEN_LLM_MAX_ATTEMPTS": "0",
			},
		},
		{
			name: "Invalid base URL",
			envVars: map[string]string{
				"SEOGEN_LLM_BASE_URL": "not a url",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := requiredEnv()
			for k, v := range tc.envVars {
				env[k] = v
			}
			setupEnv(t, env)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
