package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnames/gtdbdl/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# gtdbdl configuration.
# All values can be overridden with GTDBDL_* environment variables
# (nested fields use underscores: log.level -> GTDBDL_LOG_LEVEL)
# and with CLI flags.
`

// ConfigDir returns the configuration directory, ~/.config/gtdbdl on all
// platforms.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "gtdbdl"), nil
}

// DefaultConfigPath returns the full path of the default config file.
func DefaultConfigPath() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// ConfigFileExists reports whether a config file exists at the default
// location.
func ConfigFileExists() (bool, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(configPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// GenerateDefaultConfig writes a config file with the built-in defaults to
// the default location. Existing files are never overwritten.
func GenerateDefaultConfig() (string, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(config.Defaults())
	if err != nil {
		return "", fmt.Errorf("cannot marshal default config: %w", err)
	}

	content := append([]byte(configHeader), data...)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return "", fmt.Errorf("cannot write config file: %w", err)
	}
	return configPath, nil
}
