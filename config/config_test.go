package config

import (
	"path/filepath"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/omnipos")

	cfg := LoadEnv()

	if cfg.License.ServerURL != "http://localhost:3002" {
		t.Errorf("license server url = %q", cfg.License.ServerURL)
	}
	if cfg.Server.NodeID != 1 {
		t.Errorf("node id = %d, want 1", cfg.Server.NodeID)
	}
	if got, want := cfg.DatabasePath(), filepath.Join("/tmp/omnipos", "omnipos.db"); got != want {
		t.Errorf("DatabasePath() = %q, want %q", got, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LICENSE_SERVER_URL", "https://licenses.example.com")
	t.Setenv("NODE_ID", "7")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("DB_FILE", "shop.db")
	t.Setenv("DATA_DIR", "/var/lib/pos")

	cfg := LoadEnv()

	if cfg.License.ServerURL != "https://licenses.example.com" {
		t.Errorf("license server url = %q", cfg.License.ServerURL)
	}
	if cfg.Server.NodeID != 7 {
		t.Errorf("node id = %d, want 7", cfg.Server.NodeID)
	}
	if !cfg.Logger.DisableCaller {
		t.Error("expected caller logging disabled")
	}
	if got := cfg.DatabasePath(); got != filepath.Join("/var/lib/pos", "shop.db") {
		t.Errorf("DatabasePath() = %q", got)
	}
}

func TestLoadEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("NODE_ID", "not-a-number")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "maybe")

	cfg := LoadEnv()

	if cfg.Server.NodeID != 1 {
		t.Errorf("node id = %d, want fallback 1", cfg.Server.NodeID)
	}
	if !cfg.Logger.DisableStacktrace {
		t.Error("expected fallback true for stacktrace flag")
	}
}
