// Package config loads camelcards settings from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/camelcards/camel"
)

const (
	DefaultRules    = "jokers"
	DefaultLogLevel = "warn"
)

// Config holds the settings a scoring run needs.
type Config struct {
	Rules    string `hcl:"rules,optional"`
	LogLevel string `hcl:"log_level,optional"`
	Ranking  bool   `hcl:"ranking,optional"`
	Output   string `hcl:"output,optional"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Rules:    DefaultRules,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Rules == "" {
		cfg.Rules = DefaultRules
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return &cfg, nil
}

// Validate checks the rule set and log level names.
func (c *Config) Validate() error {
	if _, err := camel.ParseRules(c.Rules); err != nil {
		return err
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return nil
}

// GameRules returns the parsed rule set. Call Validate first.
func (c *Config) GameRules() camel.Rules {
	rules, err := camel.ParseRules(c.Rules)
	if err != nil {
		return camel.Jokers
	}
	return rules
}
