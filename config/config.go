package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yml"

// WeekStart values accepted in config.yml
const (
	WeekStartSunday = "sunday"
	WeekStartMonday = "monday"
)

type Config struct {
	Theme     string `yaml:"theme"`
	WeekStart string `yaml:"week_start"`

	// Labels overrides the built-in label catalog. The list is fixed for
	// the lifetime of the process once loaded.
	Labels []string `yaml:"labels,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Theme:     "default",
		WeekStart: WeekStartSunday,
	}
}

func Load() (Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return DefaultConfig(), err
	}

	configPath := filepath.Join(configDir, configFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	// Apply defaults for zero values
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if cfg.WeekStart != WeekStartMonday {
		cfg.WeekStart = WeekStartSunday
	}

	return cfg, nil
}

func (c Config) Save() error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	configPath := filepath.Join(configDir, configFileName)
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "daymark"), nil
}

func GetConfigDir() (string, error) {
	return getConfigDir()
}
