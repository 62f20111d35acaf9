// Package config loads runtime settings from defaults, an optional YAML file
// and OZPATH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/ozpath/internal/llm"
	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "OZPATH"
	EnvConfigFile = "OZPATH_CONFIG"
	dirName       = ".ozpath"
)

// Config is the resolved runtime configuration. It is built once in main and
// handed to constructors.
type Config struct {
	DBPath   string   `mapstructure:"db"`
	LogCalls bool     `mapstructure:"log_calls"`
	LogFile  string   `mapstructure:"log_file"`
	AI       AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Endpoint    string  `mapstructure:"endpoint"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	TimeoutMs   int     `mapstructure:"timeout_ms"`
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("db", filepath.Join(home, dirName, "ozpath.db"))
	v.SetDefault("log_calls", false)
	v.SetDefault("log_file", "")

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.endpoint", llm.DefaultEndpoint)
	v.SetDefault("ai.model", llm.DefaultModel)
	v.SetDefault("ai.temperature", llm.DefaultTemperature)
	v.SetDefault("ai.max_tokens", llm.DefaultMaxTokens)
	v.SetDefault("ai.timeout_ms", llm.DefaultTimeoutMs)
}

// Load resolves the configuration for the current user. A config file named
// by OZPATH_CONFIG must exist; the default ~/.ozpath/config.yaml is optional.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, home)

	if path := os.Getenv(EnvConfigFile); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, dirName))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix) // e.g. OZPATH_AI_API_KEY
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the chat client cannot work with.
func (c Config) Validate() error {
	switch {
	case c.DBPath == "":
		return fmt.Errorf("config: db path is empty")
	case c.AI.Temperature < 0 || c.AI.Temperature > 2:
		return fmt.Errorf("config: ai.temperature %v out of range [0, 2]", c.AI.Temperature)
	case c.AI.MaxTokens <= 0:
		return fmt.Errorf("config: ai.max_tokens must be positive, got %d", c.AI.MaxTokens)
	case c.AI.TimeoutMs <= 0:
		return fmt.Errorf("config: ai.timeout_ms must be positive, got %d", c.AI.TimeoutMs)
	}
	return nil
}

// LLM converts the AI section into the chat client's configuration.
func (c Config) LLM() llm.Config {
	return llm.Config{
		APIKey:      c.AI.APIKey,
		Endpoint:    strings.TrimRight(c.AI.Endpoint, "/"),
		Model:       c.AI.Model,
		Temperature: c.AI.Temperature,
		MaxTokens:   c.AI.MaxTokens,
		TimeoutMs:   c.AI.TimeoutMs,
		LogCalls:    c.LogCalls,
	}
}
