package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	// CookieSecure should be true behind TLS; tokens always go out HttpOnly + SameSite=Lax.
	CookieSecure bool `yaml:"cookie_secure"`
}

type OpenAIConfig struct {
	BaseURL         string  `yaml:"base_url"`
	APIKey          string  `yaml:"api_key"`
	ChatModel       string  `yaml:"chat_model"`
	ModerationModel string  `yaml:"moderation_model"`
	MaxTokens       int     `yaml:"max_tokens"`
	Temperature     float64 `yaml:"temperature"`
	RetryAttempts   int     `yaml:"retry_attempts"`
	TimeoutSeconds  int     `yaml:"timeout_seconds"`
}

func Load(configFile string) *Config {
	godotenv.Load()

	c := &Config{
		Server: ServerConfig{Port: 8090},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Auth:   AuthConfig{JWTSecret: "mindlift-dev-secret-change-me"},
		OpenAI: OpenAIConfig{
			BaseURL:         "https://api.openai.com",
			ChatModel:       "gpt-4o",
			ModerationModel: "omni-moderation-latest",
			MaxTokens:       500,
			Temperature:     0.6,
			RetryAttempts:   3,
			TimeoutSeconds:  20,
		},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/mindlift/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Auth.JWTSecret, "JWT_SECRET")
	envOverride(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	envOverride(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	envOverride(&c.OpenAI.ChatModel, "OPENAI_CHAT_MODEL")
	envOverride(&c.OpenAI.ModerationModel, "OPENAI_MODERATION_MODEL")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *OpenAIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
