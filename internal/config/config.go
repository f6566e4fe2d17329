// Package config provides YAML-based configuration loading for tetcolor.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete tetcolor configuration.
type Config struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Player  PlayerConfig  `yaml:"player"`
}

// RuntimeConfig defines the simulation loop.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"` // frames per second
	Seed     int64 `yaml:"seed"`      // 0 = seed from the clock
	Sound    bool  `yaml:"sound"`     // ring the terminal bell on game over
}

// StorageConfig defines score persistence.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	TopN   int    `yaml:"top_n"`
}

// ServerConfig defines the SSH and HTTP listeners of `tetcolor serve`.
type ServerConfig struct {
	SSHAddress  string        `yaml:"ssh_address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	HTTPAddress string        `yaml:"http_address"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty = stderr
}

// PlayerConfig defines how scores are attributed.
type PlayerConfig struct {
	Name string `yaml:"name"` // empty = $USER
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Runtime.TickRate < 1 || c.Runtime.TickRate > 240 {
		return fmt.Errorf("%w: runtime.tick_rate %d out of range 1..240", ErrInvalid, c.Runtime.TickRate)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalid)
	}
	if c.Storage.TopN < 1 || c.Storage.TopN > 1000 {
		return fmt.Errorf("%w: storage.top_n %d out of range 1..1000", ErrInvalid, c.Storage.TopN)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout is negative", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
