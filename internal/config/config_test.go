package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Template.URL != DefaultTemplateURL {
		t.Fatalf("template url = %q, want %q", cfg.Template.URL, DefaultTemplateURL)
	}
	if cfg.Template.Placeholder != "your_project_name" {
		t.Fatalf("placeholder = %q", cfg.Template.Placeholder)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "package_manager = \"PNPM\"\n\n[template]\nurl = \"https://example.com/starter.git\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PackageManager != "pnpm" {
		t.Fatalf("package manager = %q, want pnpm", cfg.PackageManager)
	}
	if cfg.Runtime != DefaultRuntime {
		t.Fatalf("runtime = %q, want %q", cfg.Runtime, DefaultRuntime)
	}
	if cfg.Template.URL != "https://example.com/starter.git" {
		t.Fatalf("template url = %q", cfg.Template.URL)
	}
	if cfg.Template.Placeholder != DefaultPlaceholder {
		t.Fatalf("placeholder = %q", cfg.Template.Placeholder)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"package manager", "package_manager = \"pip\"\n", ErrInvalidPackageManager},
		{"blank url", "[template]\nurl = \"   \"\n", ErrMissingTemplateURL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, tc.want) {
				t.Fatalf("Load error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("package_manager = \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.PackageManager = "bun"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load = %+v, want %+v", got, cfg)
	}
}
