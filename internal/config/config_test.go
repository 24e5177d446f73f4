package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	resetCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.S2APIKey != "" || len(cfg.DefaultCategories) != 0 {
		t.Errorf("Load() = %+v, want empty config", cfg)
	}
}

func TestLoadAndSave(t *testing.T) {
	resetCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := &Config{
		S2APIKey:          "secret",
		DefaultCategories: []string{"quant-ph", "cs.LG"},
		MaxResults:        500,
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	resetCache()
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.S2APIKey != "secret" || got.MaxResults != 500 {
		t.Errorf("Load() = %+v", got)
	}
	if len(got.DefaultCategories) != 2 || got.DefaultCategories[0] != "quant-ph" {
		t.Errorf("DefaultCategories = %v", got.DefaultCategories)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	resetCache()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, ConfigDir, ConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("s2_api_key: [broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandTilde("~/data/arxiv.db"); got != filepath.Join(home, "data/arxiv.db") {
		t.Errorf("ExpandTilde() = %q", got)
	}
	if got := ExpandTilde("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandTilde() = %q, want unchanged", got)
	}
}
