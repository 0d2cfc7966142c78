package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Service.URL == "" {
		t.Error("default service URL should not be empty")
	}
	if cfg.Service.Timeout != 120*time.Second {
		t.Errorf("expected 120s timeout, got %v", cfg.Service.Timeout)
	}
	if !cfg.Export.Compress {
		t.Error("compression should default to enabled")
	}
	if len(cfg.Wizard.DefaultSections) == 0 {
		t.Error("default sections should not be empty")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "battlecard.yaml")

	cfg := Default()
	cfg.Service.URL = "https://cards.internal:9443"
	cfg.Export.Author = "Sales Engineering"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Service.URL != "https://cards.internal:9443" {
		t.Errorf("expected saved URL, got %s", loaded.Service.URL)
	}
	if loaded.Export.Author != "Sales Engineering" {
		t.Errorf("expected saved author, got %s", loaded.Export.Author)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for missing file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault should not fail for missing file: %v", err)
	}
	if cfg.Service.URL != Default().Service.URL {
		t.Error("LoadOrDefault should return defaults for missing file")
	}

	cfg, err = LoadOrDefault("")
	if err != nil || cfg == nil {
		t.Error("LoadOrDefault should return defaults for empty path")
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	partial := "service:\n  url: https://override.example\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Service.URL != "https://override.example" {
		t.Errorf("expected overridden URL, got %s", cfg.Service.URL)
	}
	if cfg.Export.Confidential == "" {
		t.Error("unset fields should keep their defaults")
	}
}

func TestInitConfigDoesNotClobber(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "battlecard.yaml")

	if err := os.WriteFile(path, []byte("service:\n  url: keep-me\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service.URL != "keep-me" {
		t.Error("InitConfig should not overwrite an existing config")
	}
}
