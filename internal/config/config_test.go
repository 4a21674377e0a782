package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.URL != DefaultBackendURL {
		t.Errorf("URL = %q, want default", cfg.Backend.URL)
	}
	if cfg.Timeout() != DefaultTimeout {
		t.Errorf("Timeout = %v, want default", cfg.Timeout())
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "backend:\n  url: http://10.0.0.5:8080\n  timeout: 15s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.URL != "http://10.0.0.5:8080" {
		t.Errorf("URL = %q", cfg.Backend.URL)
	}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.Timeout())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend:\n  url: http://file:5000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PREPDECK_BACKEND_URL", "http://env:5000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.URL != "http://env:5000" {
		t.Errorf("URL = %q, want env value", cfg.Backend.URL)
	}
}

func TestLoad_InvalidURL(t *testing.T) {
	t.Setenv("PREPDECK_BACKEND_URL", "not a url")
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for invalid backend url")
	}
}

func TestTimeout_Unparseable(t *testing.T) {
	cfg := Default()
	cfg.Backend.Timeout = "soonish"
	if cfg.Timeout() != DefaultTimeout {
		t.Errorf("Timeout = %v, want default for unparseable value", cfg.Timeout())
	}
}
