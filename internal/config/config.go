// Package config loads application-level settings from config files and the
// environment. Venture configs are a separate JSON contract handled by the
// venture package; this covers everything around them.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       App       `mapstructure:"app"`
	Gemini    Gemini    `mapstructure:"gemini"`
	Output    Output    `mapstructure:"output"`
	Validator Validator `mapstructure:"validator"`
	Scoring   Scoring   `mapstructure:"scoring"`
}

// App holds general application configuration.
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// Gemini holds generative API configuration.
type Gemini struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	MaxRetries  int     `mapstructure:"max_retries"`
	RetryDelay  string  `mapstructure:"retry_delay"`
}

// Output holds output directory configuration.
type Output struct {
	ContentDirectory string `mapstructure:"content_directory"`
	ResultsDirectory string `mapstructure:"results_directory"`
}

// Validator holds link validation configuration.
type Validator struct {
	Concurrency int    `mapstructure:"concurrency"`
	Timeout     string `mapstructure:"timeout"`
	UserAgent   string `mapstructure:"user_agent"`
}

// Scoring holds SEO scoring configuration.
type Scoring struct {
	Threshold int `mapstructure:"threshold"`
}

var globalConfig *Config

// Load loads configuration from an optional config file, .env, and the
// environment. Subsequent calls return the cached config.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".openventure")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	for key, duration := range map[string]string{
		"gemini.retry_delay": config.Gemini.RetryDelay,
		"validator.timeout":  config.Validator.Timeout,
	} {
		if duration != "" {
			if _, err := time.ParseDuration(duration); err != nil {
				return nil, fmt.Errorf("invalid duration for %s: %s", key, duration)
			}
		}
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("gemini.model", "gemini-2.0-flash-exp")
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("gemini.max_tokens", 8192)
	viper.SetDefault("gemini.max_retries", 3)
	viper.SetDefault("gemini.retry_delay", "1s")

	viper.SetDefault("output.content_directory", "content")
	viper.SetDefault("output.results_directory", "results")

	viper.SetDefault("validator.concurrency", 5)
	viper.SetDefault("validator.timeout", "10s")
	viper.SetDefault("validator.user_agent", "Mozilla/5.0 (compatible; OpenVenture/1.0; Link Validator)")

	viper.SetDefault("scoring.threshold", 70)
}

func bindEnvironmentVariables() {
	bindEnvKeys("gemini.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"OPENVENTURE_DEBUG",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key.
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// RetryDelayDuration returns the parsed retry base delay.
func (g Gemini) RetryDelayDuration() time.Duration {
	d, err := time.ParseDuration(g.RetryDelay)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// TimeoutDuration returns the parsed external probe timeout.
func (v Validator) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(v.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Reset clears the global configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viper.Reset()
}
