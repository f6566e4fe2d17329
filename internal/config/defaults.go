package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetcolor.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Runtime: RuntimeConfig{
			TickRate: 60,
			Sound:    true,
		},
		Storage: StorageConfig{
			DBPath: "~/.tetcolor/scores.db",
			TopN:   30,
		},
		Server: ServerConfig{
			SSHAddress:  ":2222",
			HostKey:     ".ssh/tetcolor_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
