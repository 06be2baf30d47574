// Package config loads and validates the renderer configuration.
//
// DESIGN: Configuration comes from a YAML file; a missing file yields the
// defaults so the tool works out of the box. ${VAR:-default} env
// references are expanded before parsing.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Highlighter HighlighterConfig `yaml:"highlighter"` // adapter selection and options
	Monitoring  MonitoringConfig  `yaml:"monitoring"`  // logging settings
}

// HighlighterConfig selects and configures the highlighter adapter.
type HighlighterConfig struct {
	Name          string `yaml:"name"`           // adapter to resolve ("chroma", "highlight.js", "prism", ...)
	Style         string `yaml:"style"`          // theme / style identifier
	CSSMode       string `yaml:"css_mode"`       // class | inline
	LineNumbers   string `yaml:"line_numbers"`   // table | inline | ""
	LinkCSS       bool   `yaml:"link_css"`       // link an external stylesheet
	CopyCSS       bool   `yaml:"copy_css"`       // copy the stylesheet asset to disk
	StylesheetDir string `yaml:"stylesheet_dir"` // where WriteStylesheet lands
}

// MonitoringConfig contains logging settings.
type MonitoringConfig struct {
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // json, console, or "" for autodetect
	LogOutput string `yaml:"log_output"` // stdout, stderr, or file path
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Highlighter: HighlighterConfig{
			Name:          "chroma",
			Style:         "github",
			CSSMode:       "class",
			LinkCSS:       true,
			CopyCSS:       true,
			StylesheetDir: ".",
		},
		Monitoring: MonitoringConfig{
			LogLevel:  "info",
			LogOutput: "stderr",
		},
	}
}

// Load reads configuration from a YAML file. A missing file is not an
// error; it yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration from raw YAML bytes, expanding
// ${VAR:-default} env references and validating the result. Fields absent
// from the YAML keep their defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvWithDefaults(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks enum-valued fields.
func (c *Config) Validate() error {
	if c.Highlighter.Name == "" {
		return fmt.Errorf("highlighter.name is required")
	}
	switch c.Highlighter.CSSMode {
	case "", "class", "inline":
	default:
		return fmt.Errorf("invalid highlighter.css_mode: %q (must be class or inline)", c.Highlighter.CSSMode)
	}
	switch c.Highlighter.LineNumbers {
	case "", "table", "inline":
	default:
		return fmt.Errorf("invalid highlighter.line_numbers: %q (must be table, inline, or empty)", c.Highlighter.LineNumbers)
	}
	switch c.Monitoring.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid monitoring.log_format: %q (must be json or console)", c.Monitoring.LogFormat)
	}
	return nil
}

// envRefPattern matches ${VAR} and ${VAR:-default}.
var envRefPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults expands environment variable references,
// substituting the inline default when the variable is unset or empty.
func expandEnvWithDefaults(s string) string {
	return envRefPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := envRefPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) > 2 {
			return parts[2]
		}
		return ""
	})
}
