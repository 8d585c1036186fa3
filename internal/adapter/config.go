package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig holds catalog API configuration
type SourceConfig struct {
	URL     string        `mapstructure:"url"`     // Catalog API base URL (empty = public endpoint)
	Timeout time.Duration `mapstructure:"timeout"` // Per-request timeout
}

// UIConfig holds presentation configuration
type UIConfig struct {
	// UnitsPerCell converts terminal columns to the layout units the
	// responsive page-size rule is defined in. One card is 260 units,
	// so the default of 10 makes a card 26 columns wide.
	UnitsPerCell int `mapstructure:"units_per_cell"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     "",
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			UnitsPerCell: 10,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "castdeck", "castdeck.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "castdeck", "castdeck.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "castdeck")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "castdeck")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("CASTDECK")
	viper.AutomaticEnv()

	// Config file is optional; defaults apply when it is absent
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.UI.UnitsPerCell <= 0 {
		cfg.UI.UnitsPerCell = 10
	}

	return cfg, nil
}
