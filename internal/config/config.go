package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// BootstrapAdmin declares an admin account ensured at startup. Registration
// never creates admins, so without this the admin console is unreachable.
type BootstrapAdmin struct {
	Name     string `yaml:"name" validate:"required"`
	Email    string `yaml:"email" validate:"required,email"`
	Contact  string `yaml:"contact,omitempty"`
	Password string `yaml:"password" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	StorePath string          `yaml:"storePath" env:"FLOODCAMP_STORE_PATH" validate:"required"`
	Admin     *BootstrapAdmin `yaml:"admin,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads the configuration for the given environment, looking for
// floodcamp.<env>.yaml first and falling back to floodcamp.yaml. Environment
// variables override file values.
func LoadWithEnv(environment string) (*Config, error) {
	configPath, err := findConfigFile(environment)
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

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
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
	return nil
}

// findConfigFile searches for the config file in the current directory and
// the home directory, preferring the environment-specific name.
func findConfigFile(environment string) (string, error) {
	candidates := []string{"floodcamp.yaml"}
	if environment != "" {
		candidates = []string{fmt.Sprintf("floodcamp.%s.yaml", environment), "floodcamp.yaml"}
	}

	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	for _, name := range candidates {
		homeConfigPath := filepath.Join(homeDir, name)
		if _, err := os.Stat(homeConfigPath); err == nil {
			return homeConfigPath, nil
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
