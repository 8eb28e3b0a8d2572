package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Catalog   CatalogConfig
	Gemini    GeminiConfig
	Assistant AssistantConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type CatalogConfig struct {
	// File is an optional path to a JSON catalog seed. Empty means the
	// built-in default directory data is used.
	File string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

// AssistantConfig carries the assistant's fixed user-facing messages so
// they can be localized or reworded without a rebuild.
type AssistantConfig struct {
	Timeout             time.Duration
	Greeting            string
	UnconfiguredMessage string
	FailureMessage      string
	EmptyReplyMessage   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_TEMPERATURE", 0.7)
	viper.SetDefault("ASSISTANT_GREETING", "Hello! I am your Sylhet Clinic Assistant. How can I help you today?")
	viper.SetDefault("ASSISTANT_UNCONFIGURED_MESSAGE", "API Key not configured. Please contact support.")
	viper.SetDefault("ASSISTANT_FAILURE_MESSAGE", "I encountered an error while trying to help. Please try again later.")
	viper.SetDefault("ASSISTANT_EMPTY_REPLY_MESSAGE", "I'm sorry, I couldn't process that request.")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; everything can come from the process
		// environment and defaults.
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	timeout, err := time.ParseDuration(viper.GetString("CHAT_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Catalog: CatalogConfig{
			File: viper.GetString("CATALOG_FILE"),
		},
		Gemini: GeminiConfig{
			APIKey:      viper.GetString("GEMINI_API_KEY"),
			Model:       viper.GetString("GEMINI_MODEL"),
			Temperature: viper.GetFloat64("GEMINI_TEMPERATURE"),
		},
		Assistant: AssistantConfig{
			Timeout:             timeout,
			Greeting:            viper.GetString("ASSISTANT_GREETING"),
			UnconfiguredMessage: viper.GetString("ASSISTANT_UNCONFIGURED_MESSAGE"),
			FailureMessage:      viper.GetString("ASSISTANT_FAILURE_MESSAGE"),
			EmptyReplyMessage:   viper.GetString("ASSISTANT_EMPTY_REPLY_MESSAGE"),
		},
	}

	return config, nil
}
