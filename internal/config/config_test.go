package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileGivesZeroDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nonexistent"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Defaults.Provider != "" || cfg.Defaults.OutputDir != "" {
		t.Fatalf("expected zero defaults, got %+v", cfg.Defaults)
	}
}

func TestLoadFromReadsYAMLDefaults(t *testing.T) {
	root := t.TempDir()
	content := "provider: aws\nregions:\n  aws: eu-west-1\n  gcp: europe-west1\noutput_dir: infra\n"
	if err := os.WriteFile(filepath.Join(root, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Defaults.Provider != "aws" {
		t.Errorf("provider = %q, want aws", cfg.Defaults.Provider)
	}
	if got := cfg.DefaultRegion("gcp"); got != "europe-west1" {
		t.Errorf("DefaultRegion(gcp) = %q, want europe-west1", got)
	}
	if got := cfg.DefaultRegion("azure"); got != "" {
		t.Errorf("DefaultRegion(azure) = %q, want empty", got)
	}
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "config.yaml"), []byte("provider: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFrom(root); err == nil {
		t.Fatalf("expected parse error for malformed yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	root := filepath.Join(t.TempDir(), "state")
	cfg := &Config{Root: root}
	cfg.Defaults.Provider = "gcp"
	cfg.Defaults.Regions = map[string]string{"gcp": "us-central1"}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Defaults.Provider != "gcp" || loaded.DefaultRegion("gcp") != "us-central1" {
		t.Fatalf("round trip mismatch: %+v", loaded.Defaults)
	}
}
