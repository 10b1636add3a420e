package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "config.yaml"
)

// Load resolves the configuration once at startup. Values come from, in
// increasing priority: env-default tags, the YAML file, the environment.
// A CONFIG_PATH that names a missing file is an error; without CONFIG_PATH
// ./config.yaml is read when present and the environment alone otherwise.
func Load() (*Config, error) {
	path, err := resolvePath(os.Getenv(configPathEnv))
	if err != nil {
		return nil, err
	}

	cfg, err := read(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// resolvePath returns the YAML file to read, or "" for environment only.
func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: %s=%s: %w", configPathEnv, explicit, err)
		}
		return explicit, nil
	}

	_, err := os.Stat(defaultConfigPath)
	switch {
	case err == nil:
		return defaultConfigPath, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("config: %s: %w", defaultConfigPath, err)
	}
}

func read(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &cfg, nil
}

// EnvUsage lists every environment variable the service reads together
// with its default.
func EnvUsage() (string, error) {
	header := "Environment variables (CONFIG_PATH selects an optional YAML file):"
	return cleanenv.GetDescription(&Config{}, &header)
}
