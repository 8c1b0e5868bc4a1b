// File: control/config.go
//
// TOML-backed application configuration for server entry points. Missing
// keys keep their defaults; the core takes these values through
// server.Config, not by reading files itself.

package control

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// AppConfig is the file-level configuration consumed by entry points.
type AppConfig struct {
	ListenAddr     string `toml:"listen_addr"`
	Workers        int    `toml:"workers"`
	ReadBufferSize int    `toml:"read_buffer_size"`
	Root           string `toml:"root"`
	LogLevel       string `toml:"log_level"`
}

// DefaultAppConfig returns the defaults used when no file is given.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		ListenAddr:     "127.0.0.1:8000",
		Workers:        0, // 0 = logical core count
		ReadBufferSize: 30000,
		Root:           "public",
		LogLevel:       "info",
	}
}

// LoadAppConfig reads a TOML file over the defaults. An empty path returns
// the defaults unchanged.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
