package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveConfig provides methods to save configuration values.
type SaveConfig struct {
	// GlobalConfigDir is the directory under ~/.config/ for global config.
	GlobalConfigDir string

	// GlobalConfigFile is the filename. Defaults to "config.yaml".
	GlobalConfigFile string

	// GlobalPath overrides the global config location when set.
	GlobalPath string

	// LocalConfigName is the filename for local config.
	LocalConfigName string

	// ValidKeys lists keys that can be saved. If nil, all keys are valid.
	ValidKeys []string
}

func (c SaveConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

func (c SaveConfig) globalPath() (string, error) {
	if c.GlobalPath != "" {
		return c.GlobalPath, nil
	}
	if c.GlobalConfigDir == "" {
		return "", fmt.Errorf("global config directory not configured")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", c.GlobalConfigDir, c.globalConfigFile()), nil
}

func (c SaveConfig) validate(key string) error {
	if len(c.ValidKeys) > 0 && !slices.Contains(c.ValidKeys, key) {
		return fmt.Errorf("unknown config key: %s\n\nValid keys: %s",
			key, strings.Join(c.ValidKeys, ", "))
	}
	return nil
}

// SaveGlobal saves a key-value pair to the global config file and returns
// the path written.
func (c SaveConfig) SaveGlobal(key, value string) (string, error) {
	if err := c.validate(key); err != nil {
		return "", err
	}

	configPath, err := c.globalPath()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return "", err
	}
	return configPath, writeKey(configPath, key, value, 0o600)
}

// SaveLocal saves a key-value pair to the local config file in dir and
// returns the path written.
func (c SaveConfig) SaveLocal(dir, key, value string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("local config directory not given")
	}
	if c.LocalConfigName == "" {
		return "", fmt.Errorf("local config name not configured")
	}
	if err := c.validate(key); err != nil {
		return "", err
	}

	configPath := filepath.Join(dir, c.LocalConfigName)
	// Local config may be shared and should be readable
	return configPath, writeKey(configPath, key, value, 0o644)
}

// DeleteGlobalKey removes a key from the global config.
func (c SaveConfig) DeleteGlobalKey(key string) error {
	configPath, err := c.globalPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil // Nothing to delete
	}

	var existing map[string]interface{}
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return fmt.Errorf("parse %s: %w", configPath, err)
	}

	delete(existing, key)

	data, err = yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

// writeKey loads path (if present), sets key and writes it back.
func writeKey(path, key, value string, perm os.FileMode) error {
	var existing map[string]interface{}
	if data, readErr := os.ReadFile(path); readErr == nil {
		if err := yaml.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}

	existing[key] = parseValue(value)

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, perm)
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) interface{} {
	lower := strings.ToLower(value)
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	return value
}
