package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultTemplateURL is the starter repository cloned into new projects.
	DefaultTemplateURL = "https://github.com/CIDROY-Tech/adonisjs-postgres-logging-starter.git"
	// DefaultPlaceholder marks the database name inside .env.example.
	DefaultPlaceholder = "your_project_name"
	// DefaultPackageManager installs dependencies in the generated project.
	DefaultPackageManager = "npm"
	// DefaultRuntime executes the framework's ace script.
	DefaultRuntime = "node"

	appDir   = "create-adonis-starter"
	fileName = "config.toml"
)

// Config captures the user editable settings stored in config.toml.
type Config struct {
	PackageManager string        `toml:"package_manager"`
	Runtime        string        `toml:"runtime"`
	Template       TemplateBlock `toml:"template"`
}

// TemplateBlock describes the starter repository and its substitution token.
type TemplateBlock struct {
	URL         string `toml:"url"`
	Placeholder string `toml:"placeholder"`
}

var (
	// ErrMissingTemplateURL indicates the template URL was blanked out.
	ErrMissingTemplateURL = errors.New("config.template.url must be set")
	// ErrInvalidPackageManager indicates the package manager is not recognized.
	ErrInvalidPackageManager = errors.New("config.package_manager must be npm, pnpm, yarn, or bun")
)

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.PackageManager == "" {
		c.PackageManager = DefaultPackageManager
	} else {
		c.PackageManager = strings.ToLower(c.PackageManager)
	}
	if c.Runtime == "" {
		c.Runtime = DefaultRuntime
	}
	if c.Template.URL == "" {
		c.Template.URL = DefaultTemplateURL
	}
	if c.Template.Placeholder == "" {
		c.Template.Placeholder = DefaultPlaceholder
	}
}

// Validate ensures the configuration can drive a scaffold run.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Template.URL) == "" {
		return ErrMissingTemplateURL
	}
	switch c.PackageManager {
	case "npm", "pnpm", "yarn", "bun":
	default:
		return ErrInvalidPackageManager
	}
	return nil
}

// DefaultPath reports where Load looks when no --config flag is given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
