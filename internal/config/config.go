// Package config loads the TOML configuration for the bridge client.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Transport selects how turn frames are streamed.
const (
	TransportHTTP      = "http"
	TransportWebSocket = "websocket"
)

type Config struct {
	Server  Server  `toml:"server"`
	Session Session `toml:"session"`
	Export  Export  `toml:"export"`
}

type Server struct {
	BaseURL   string `toml:"base_url"`
	Transport string `toml:"transport"`
}

type Session struct {
	CallerID      string `toml:"caller_id"`
	VolunteerName string `toml:"volunteer_name"`
	Language      string `toml:"language"`
}

type Export struct {
	Dir string `toml:"dir"`
}

func Default() Config {
	return Config{
		Server:  Server{BaseURL: "http://localhost:8000", Transport: TransportHTTP},
		Session: Session{Language: "en"},
		Export:  Export{Dir: "."},
	}
}

// Load reads path over the defaults. A missing file is not an error; an
// unreadable or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()

	_, statErr := os.Stat(path)
	if path != "" && !os.IsNotExist(statErr) {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv lets deploy environments override the server endpoint without
// touching the config file.
func (c *Config) applyEnv() {
	if baseURL := os.Getenv("BRIDGE_BASE_URL"); baseURL != "" {
		c.Server.BaseURL = baseURL
	}
	if transport := os.Getenv("BRIDGE_TRANSPORT"); transport != "" {
		c.Server.Transport = transport
	}
}

func (c Config) validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url must not be empty")
	}
	switch c.Server.Transport {
	case TransportHTTP, TransportWebSocket:
	default:
		return fmt.Errorf("server.transport must be %q or %q", TransportHTTP, TransportWebSocket)
	}
	return nil
}
