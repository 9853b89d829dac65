package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MailConfig enables email delivery of notifications via Gmail
type MailConfig struct {
	Enabled     bool   `yaml:"enabled"`
	GmailUserID string `yaml:"gmailUserID,omitempty"`
	Sender      string `yaml:"sender,omitempty" validate:"omitempty,email"`
}

// Config represents the application configuration
type Config struct {
	Env        string     `yaml:"env,omitempty"`
	ListenAddr string     `yaml:"listenAddr" validate:"required,hostname_port"`
	Mail       MailConfig `yaml:"mail,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from volunteer_hub_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Mail.Enabled && cfg.Mail.GmailUserID == "" {
		return fmt.Errorf("config validation failed: mail.gmailUserID is required when mail is enabled")
	}

	return nil
}

// findConfigFile searches for volunteer_hub_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "volunteer_hub_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
