package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search path.
const FileName = "tetcolor.yaml"

// Environment variables that override the file.
const (
	EnvDB       = "TETCOLOR_DB"
	EnvLogLevel = "TETCOLOR_LOG_LEVEL"
	EnvPlayer   = "TETCOLOR_PLAYER"
)

// Load loads the configuration and applies environment overrides.
// Search order: customPath -> ~/.tetcolor/tetcolor.yaml -> ./configs/tetcolor.yaml -> embedded default.
// Variables from ./.env are loaded first without replacing ones already set.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to read .env: %w", err)
	}
	ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// ApplyEnv overrides config values from the environment.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvDB); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPlayer); v != "" {
		cfg.Player.Name = v
	}
}

// PlayerName returns the configured player name, falling back to $USER.
func (c Config) PlayerName() string {
	if c.Player.Name != "" {
		return c.Player.Name
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetcolor", filename)
}
