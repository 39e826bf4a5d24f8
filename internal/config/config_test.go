package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "ShopHub" {
		t.Errorf("expected Name=ShopHub, got %s", cfg.Name)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("expected BaseURL=%s, got %s", DefaultBaseURL, cfg.API.BaseURL)
	}
	if cfg.GetAPITimeout() != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.GetAPITimeout())
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("SHOPHUB_API_URL", "")
	t.Setenv("SHOPHUB_API_TIMEOUT", "")
	t.Setenv("SHOPHUB_STATE_DIR", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://localhost:8080"
	cfg.API.Timeout = "5s"
	cfg.Logging.DebugMode = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.API.BaseURL != "http://localhost:8080" {
		t.Errorf("expected BaseURL=http://localhost:8080, got %s", loaded.API.BaseURL)
	}
	if loaded.GetAPITimeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", loaded.GetAPITimeout())
	}
	if !loaded.Logging.DebugMode {
		t.Error("expected DebugMode=true after round trip")
	}
}

func TestConfig_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("SHOPHUB_API_URL", "")
	t.Setenv("SHOPHUB_STATE_DIR", "")

	loaded, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.API.BaseURL != DefaultBaseURL {
		t.Errorf("expected default BaseURL, got %s", loaded.API.BaseURL)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	os.Setenv("SHOPHUB_API_URL", "http://stub:9999")
	defer os.Unsetenv("SHOPHUB_API_URL")

	os.Setenv("SHOPHUB_DARK_MODE", "1")
	defer os.Unsetenv("SHOPHUB_DARK_MODE")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.API.BaseURL != "http://stub:9999" {
		t.Errorf("expected BaseURL=http://stub:9999, got %s", cfg.API.BaseURL)
	}
	if !cfg.UI.DarkMode {
		t.Error("expected DarkMode=true from env")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid default config, got error: %v", err)
	}

	cfg.API.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty base URL")
	}

	cfg = DefaultConfig()
	cfg.API.Timeout = "not-a-duration"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bad timeout")
	}
}
