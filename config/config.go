// Package config loads client configuration from a TOML file with
// environment variable overrides. Every field has a working default so
// the client runs with no config file at all
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Socket  SocketConfig  `toml:"socket"`
	Auth    AuthConfig    `toml:"auth"`
	Battle  BattleConfig  `toml:"battle"`
	Display DisplayConfig `toml:"display"`
	Audio   AudioConfig   `toml:"audio"`
}

type ServerConfig struct {
	BaseURL string        `toml:"base_url" env:"RIFTFALL_SERVER_URL"`
	Timeout time.Duration `toml:"timeout"`
}

type SocketConfig struct {
	URL       string `toml:"url" env:"RIFTFALL_SOCKET_URL"`
	Reconnect bool   `toml:"reconnect"`
}

type AuthConfig struct {
	TokenPath string `toml:"token_path" env:"RIFTFALL_TOKEN_PATH"`
	Username  string `toml:"username" env:"RIFTFALL_USERNAME"`
	Password  string `toml:"password" env:"RIFTFALL_PASSWORD"`
}

type BattleConfig struct {
	// DefaultSkillID is cast when no other skill is bound
	DefaultSkillID string `toml:"default_skill_id" env:"RIFTFALL_SKILL_ID"`
}

type DisplayConfig struct {
	// ColorMode is "full", "basic" or "mono"
	ColorMode string `toml:"color_mode" env:"RIFTFALL_COLOR_MODE"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled" env:"RIFTFALL_AUDIO"`
}

// Load reads the config at path, falling back to defaults when the file
// does not exist, then applies environment overrides
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// All defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 15 * time.Second,
		},
		Socket: SocketConfig{
			URL:       "ws://localhost:3000/battle",
			Reconnect: true,
		},
		Auth: AuthConfig{
			TokenPath: defaultTokenPath(),
		},
		Battle: BattleConfig{
			DefaultSkillID: "8f7d7012-c6e8-4429-8d5f-f2f68e61d67d",
		},
		Display: DisplayConfig{
			ColorMode: "full",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".riftfall/tokens.json"
	}
	return home + "/.riftfall/tokens.json"
}
