package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores configuration values for the application.
// These values can be read from a configuration file or environment variables.
type Config struct {
	// ServerAddress is the IP address where the server will listen.
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	// ServerPort is the port on which the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT"`
	// DatabaseType selects the database backend, either "sqlite" or "postgres".
	DatabaseType string `mapstructure:"DATABASE_TYPE"`
	// DatabaseDSN is the data source name passed to the database driver.
	DatabaseDSN string `mapstructure:"DATABASE_DSN"`
	// Secret is a secret key used for JWT token signing and validation.
	Secret string `mapstructure:"SECRET"`
	// TokenDuration is the validity period of issued JWT tokens.
	TokenDuration time.Duration `mapstructure:"TOKEN_DURATION"`
}

// Load loads configuration settings from a specified file or environment variables.
// If both a configuration file and environment variables are used, environment variables take precedence.
func Load(filePath string) (*Config, error) {
	viper.SetConfigFile(filePath)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}
