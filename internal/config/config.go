// Package config loads crossref configuration from YAML with environment
// expansion and defaulting.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	cerrors "git.home.luguber.info/inful/crossref/internal/errors"
)

// Config represents the application configuration
type Config struct {
	// Docs is the root directory of the document tree.
	Docs string `yaml:"docs"`
	// SourceSuffixes lists file suffixes recognized as documents; a target
	// ending in one of these has the suffix stripped on retry during
	// document resolution.
	SourceSuffixes []string `yaml:"source_suffixes,omitempty"`
	// HeadingAnchors is the deepest heading level that receives an anchor.
	// 0 disables anchor resolution entirely.
	HeadingAnchors int `yaml:"heading_anchors"`
	// RefDomains restricts which domains participate in resolution.
	// nil means all registered domains.
	RefDomains []string `yaml:"ref_domains,omitempty"`
	// Strict makes unresolved references warnings for every placeholder,
	// not only those marked must-resolve.
	Strict bool `yaml:"strict"`
	// Store is an optional path to a SQLite registry index.
	Store string `yaml:"store,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// .env values supplement the process environment for ${VAR} expansion
	// below; missing files are fine.
	_ = godotenv.Load(".env", ".env.local")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, cerrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryConfig, cerrors.SeverityFatal, "failed to read config file").
			WithContext("path", configPath)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryConfig, cerrors.SeverityFatal, "failed to unmarshal config").
			WithContext("path", configPath)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Docs == "" {
		c.Docs = "./docs"
	}
	if len(c.SourceSuffixes) == 0 {
		c.SourceSuffixes = []string{".md"}
	}
}

// Validate checks field consistency after defaulting.
func (c *Config) Validate() error {
	if c.HeadingAnchors < 0 || c.HeadingAnchors > 6 {
		return cerrors.ValidationFailed("heading_anchors", "must be between 0 and 6")
	}
	for _, s := range c.SourceSuffixes {
		if s == "" || s[0] != '.' {
			return cerrors.ValidationFailed("source_suffixes", "suffixes must start with a dot")
		}
	}
	return nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{HeadingAnchors: 2}
	cfg.applyDefaults()
	return cfg
}
