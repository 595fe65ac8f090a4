// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Sync struct {
		MaxMessages      int `mapstructure:"max_messages" yaml:"max_messages"`
		ProgressInterval int `mapstructure:"progress_interval" yaml:"progress_interval"`
	} `mapstructure:"sync" yaml:"sync"`

	Dedup struct {
		WindowSeconds int64 `mapstructure:"window_seconds" yaml:"window_seconds"`
	} `mapstructure:"dedup" yaml:"dedup"`

	Data struct {
		Directory    string `mapstructure:"directory" yaml:"directory"`
		ExpensesFile string `mapstructure:"expenses_file" yaml:"expenses_file"`
		IncomesFile  string `mapstructure:"incomes_file" yaml:"incomes_file"`
		SettingsFile string `mapstructure:"settings_file" yaml:"settings_file"`
		MessagesFile string `mapstructure:"messages_file" yaml:"messages_file"`
		CategoryFile string `mapstructure:"category_file" yaml:"category_file"`
	} `mapstructure:"data" yaml:"data"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then SMSLEDGER_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sms-ledger")
	v.AddConfigPath(".sms-ledger")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SMSLEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("sync.max_messages", 1000)
	v.SetDefault("sync.progress_interval", 5)

	v.SetDefault("dedup.window_seconds", 60)

	v.SetDefault("data.directory", "")
	v.SetDefault("data.expenses_file", "expenses.csv")
	v.SetDefault("data.incomes_file", "incomes.csv")
	v.SetDefault("data.settings_file", "settings.yaml")
	v.SetDefault("data.messages_file", "")
	v.SetDefault("data.category_file", "categories.yaml")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Sync.MaxMessages < 1 {
		return fmt.Errorf("sync.max_messages must be positive, got: %d", config.Sync.MaxMessages)
	}

	if config.Sync.ProgressInterval < 1 {
		return fmt.Errorf("sync.progress_interval must be positive, got: %d", config.Sync.ProgressInterval)
	}

	if config.Dedup.WindowSeconds < 1 {
		return fmt.Errorf("dedup.window_seconds must be positive, got: %d", config.Dedup.WindowSeconds)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
