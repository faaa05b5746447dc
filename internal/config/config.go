package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      int    `mapstructure:"APP_PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// Completion backend.
	CompletionProvider  string        `mapstructure:"COMPLETION_PROVIDER"`
	AnthropicURL        string        `mapstructure:"ANTHROPIC_URL"`
	AnthropicAPIKey     string        `mapstructure:"ANTHROPIC_API_KEY"`
	OpenAIBaseURL       string        `mapstructure:"OPENAI_BASE_URL"`
	OpenAIAPIKey        string        `mapstructure:"OPENAI_API_KEY"`
	CompletionMaxTokens int           `mapstructure:"COMPLETION_MAX_TOKENS"`
	CompletionTimeout   time.Duration `mapstructure:"COMPLETION_TIMEOUT"`
	SystemPrompt        string        `mapstructure:"SYSTEM_PROMPT"`

	// Model settings handed out when a user has no stored profile.
	DefaultEnabledModels []string `mapstructure:"DEFAULT_ENABLED_MODELS"`
	DefaultSelectedModel string   `mapstructure:"DEFAULT_SELECTED_MODEL"`

	SessionIdleTTL time.Duration `mapstructure:"SESSION_IDLE_TTL"`

	// External collaborators.
	AuthURL       string `mapstructure:"AUTH_URL"`
	AuthAnonKey   string `mapstructure:"AUTH_ANON_KEY"`
	BillingURL    string `mapstructure:"BILLING_URL"`
	BillingAPIKey string `mapstructure:"BILLING_API_KEY"`
	SiteURL       string `mapstructure:"SITE_URL"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/chatbuilder.db")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetDefault("COMPLETION_PROVIDER", "anthropic")
	viper.SetDefault("ANTHROPIC_URL", "https://api.anthropic.com")
	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("COMPLETION_MAX_TOKENS", 1024)
	viper.SetDefault("COMPLETION_TIMEOUT", 2*time.Minute)
	viper.SetDefault("SYSTEM_PROMPT", "")

	viper.SetDefault("DEFAULT_ENABLED_MODELS", []string{
		"claude-3-opus-20240229",
		"claude-3-5-sonnet-20240620",
		"claude-3-haiku-20240307",
	})
	viper.SetDefault("DEFAULT_SELECTED_MODEL", "claude-3-5-sonnet-20240620")

	viper.SetDefault("SESSION_IDLE_TTL", 30*time.Minute)

	viper.SetDefault("AUTH_URL", "http://localhost:54321")
	viper.SetDefault("AUTH_ANON_KEY", "")
	viper.SetDefault("BILLING_URL", "https://api.update.dev")
	viper.SetDefault("BILLING_API_KEY", "")
	viper.SetDefault("SITE_URL", "http://localhost:3000")

	viper.SetDefault("RATE_LIMIT_RPS", 1.0)
	viper.SetDefault("RATE_LIMIT_BURST", 5)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
