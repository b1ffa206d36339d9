// Package config loads settings for the statement command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/warp/statement-engine/render"
)

// Config defines statement command configuration.
type Config struct {
	CatalogPath string `yaml:"catalog"`
	InvoicePath string `yaml:"invoice"`
	Scenario    string `yaml:"scenario"`
	Format      string `yaml:"format"`
	OutputPath  string `yaml:"output"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   string(render.FormatText),
		LogLevel: "info",
	}
}

// Load starts from defaults, overlays the YAML file at path (or the file
// named by STATEMENT_CONFIG when path is empty) and then applies env
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("STATEMENT_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	overrideFromEnv(&cfg.CatalogPath, "STATEMENT_CATALOG")
	overrideFromEnv(&cfg.InvoicePath, "STATEMENT_INVOICE")
	overrideFromEnv(&cfg.Scenario, "STATEMENT_SCENARIO")
	overrideFromEnv(&cfg.Format, "STATEMENT_FORMAT")
	overrideFromEnv(&cfg.OutputPath, "STATEMENT_OUTPUT")
	overrideFromEnv(&cfg.LogLevel, "STATEMENT_LOG_LEVEL")

	return cfg, nil
}

// Validate checks that the config names an input and a known format.
func (c Config) Validate() error {
	if c.Scenario == "" && (c.CatalogPath == "" || c.InvoicePath == "") {
		return errors.New("config: either scenario or both catalog and invoice are required")
	}
	if c.Scenario != "" && (c.CatalogPath != "" || c.InvoicePath != "") {
		return errors.New("config: scenario cannot be combined with catalog or invoice files")
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func overrideFromEnv(field *string, key string) {
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}
