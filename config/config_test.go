package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != "http://localhost:3000" {
		t.Errorf("base url = %q", cfg.Server.BaseURL)
	}
	if cfg.Battle.DefaultSkillID != "8f7d7012-c6e8-4429-8d5f-f2f68e61d67d" {
		t.Errorf("skill id = %q", cfg.Battle.DefaultSkillID)
	}
	if !cfg.Socket.Reconnect || !cfg.Audio.Enabled {
		t.Error("reconnect and audio should default on")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riftfall.toml")
	body := `
[server]
base_url = "https://play.example.com"

[display]
color_mode = "mono"

[audio]
enabled = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != "https://play.example.com" {
		t.Errorf("base url = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout != 15*time.Second {
		t.Errorf("timeout = %v, want default", cfg.Server.Timeout)
	}
	if cfg.Display.ColorMode != "mono" {
		t.Errorf("color mode = %q", cfg.Display.ColorMode)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled by file")
	}
	// Untouched sections keep defaults
	if cfg.Socket.URL != "ws://localhost:3000/battle" {
		t.Errorf("socket url = %q", cfg.Socket.URL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riftfall.toml")
	if err := os.WriteFile(path, []byte("[server]\nbase_url = \"https://file.example.com\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RIFTFALL_SERVER_URL", "https://env.example.com")
	t.Setenv("RIFTFALL_SKILL_ID", "skill-override")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != "https://env.example.com" {
		t.Errorf("base url = %q, want env override", cfg.Server.BaseURL)
	}
	if cfg.Battle.DefaultSkillID != "skill-override" {
		t.Errorf("skill id = %q, want env override", cfg.Battle.DefaultSkillID)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\nbase_url"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
