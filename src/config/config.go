// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by [Load].
const (
	EnvConfigFile = "PKTTRAIL_SCHEMA_CONFIG"
	EnvOutput     = "PKTTRAIL_SCHEMA_OUTPUT"
	EnvLogFormat  = "PKTTRAIL_SCHEMA_LOG_FORMAT"
)

// Report formats for the validate command.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{OutputText, OutputJSON, OutputTable}

// LogFormats lists the accepted log.format values.
var LogFormats = []string{LogText, LogJSON}

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents HuJSON configuration (.json and anything unknown)
	formatJSON format = iota
	// formatYAML represents YAML configuration (.yaml, .yml)
	formatYAML
)

// Config holds the command settings.
type Config struct {
	Output struct {
		// Format: report format for validate (text, json or table)
		Format string `json:"format" yaml:"format"`
	} `json:"output" yaml:"output"`

	Log struct {
		// Format: text for human output, json for one object per line
		Format string `json:"format" yaml:"format"`
		// Silent: drop all log output
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`

	Validation struct {
		// JSONSchema: also check messages against the embedded JSON Schema documents
		JSONSchema bool `json:"jsonSchema" yaml:"jsonSchema"`
		// Lines: treat input as newline-delimited messages
		Lines bool `json:"lines" yaml:"lines"`
	} `json:"validation" yaml:"validation"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.Output.Format = OutputText
	c.Log.Format = LogText
	return c
}

func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func unmarshal(data []byte, c *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
		if err := json.Unmarshal(std, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, the file at path and the
// environment. When path is empty the PKTTRAIL_SCHEMA_CONFIG variable is
// used, and when that is empty too only defaults and environment apply.
//
// Unknown output or log formats, whether from the file or the environment,
// fall back to the defaults.
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshal(data, c, detectFormat(path)); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}

	c.Output.Format = strings.ToLower(c.Output.Format)
	if !slices.Contains(OutputFormats, c.Output.Format) {
		c.Output.Format = OutputText
	}
	c.Log.Format = strings.ToLower(c.Log.Format)
	if !slices.Contains(LogFormats, c.Log.Format) {
		c.Log.Format = LogText
	}

	return c, nil
}
