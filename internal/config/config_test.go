package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %q", cfg.Port)
	}
	if cfg.StoreDriver != "postgres" {
		t.Errorf("expected postgres driver, got %q", cfg.StoreDriver)
	}
	if cfg.InactivityThreshold != 10*time.Second {
		t.Errorf("expected 10s threshold, got %s", cfg.InactivityThreshold)
	}
	if cfg.ReaperInterval != 15*time.Second {
		t.Errorf("expected 15s interval, got %s", cfg.ReaperInterval)
	}
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "STORE_DRIVER=memory\nREAPER_INTERVAL=2s\nCORS_ORIGINS=http://a.test, http://b.test\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != "memory" {
		t.Errorf("expected memory driver, got %q", cfg.StoreDriver)
	}
	if cfg.ReaperInterval != 2*time.Second {
		t.Errorf("expected 2s interval, got %s", cfg.ReaperInterval)
	}
	origins := cfg.AllowedOrigins()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Errorf("unexpected origins %v", origins)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7000\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected env port 9000, got %q", cfg.Port)
	}
}

func TestLoadConfigRejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("REAPER_INTERVAL", "0s")
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("expected error for zero reaper interval")
	}
}
