package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Account            string        `mapstructure:"VTEX_ACCOUNT"`
	Workspace          string        `mapstructure:"VTEX_WORKSPACE"`
	Environment        string        `mapstructure:"VTEX_ENVIRONMENT"`
	BaseURL            string        `mapstructure:"VTEX_BASE_URL"`
	AuthToken          string        `mapstructure:"VTEX_AUTH_TOKEN"`
	AdminUserAuthToken string        `mapstructure:"VTEX_ADMIN_USER_AUTH_TOKEN"`
	StoreUserAuthToken string        `mapstructure:"VTEX_STORE_USER_AUTH_TOKEN"`
	HTTPTimeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	UserAgent          string        `mapstructure:"USER_AGENT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads configuration from file or environment variables.
// An empty path reads the environment only.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// Set defaults for non-sensitive config
	v.SetDefault("VTEX_ACCOUNT", "")
	v.SetDefault("VTEX_WORKSPACE", "master")
	v.SetDefault("VTEX_ENVIRONMENT", "vtexcommercestable")
	v.SetDefault("VTEX_BASE_URL", "")
	v.SetDefault("VTEX_AUTH_TOKEN", "")
	v.SetDefault("VTEX_ADMIN_USER_AUTH_TOKEN", "")
	v.SetDefault("VTEX_STORE_USER_AUTH_TOKEN", "")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("USER_AGENT", "commerce-clients")
	v.SetDefault("LOG_LEVEL", "info")

	// Prefer environment variables over config file
	v.AutomaticEnv()

	// Load config file, if any
	if path != "" {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil {
			return
		}
	}

	// Unmarshal config into struct
	err = v.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.Account == "" && config.BaseURL == "" {
		return fmt.Errorf("VTEX_ACCOUNT or VTEX_BASE_URL is required")
	}
	if config.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative")
	}

	return nil
}
