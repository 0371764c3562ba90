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
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted for the
// configuration file path when none is passed explicitly.
const EnvConfigFile = "X509_VERIFY_CONFIG_FILE"

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the verifier configuration structure.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// X509_VERIFY_CONFIG_FILE environment variable, with defaults applied for any
// missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Store: Trust store directory locations
	Store struct {
		// CADir: Directory scanned for trusted CA certificates (PEM or DER)
		CADir string `json:"caDir" yaml:"caDir"`
		// CRLDir: Directory scanned for locally installed CRLs (PEM or DER)
		CRLDir string `json:"crlDir" yaml:"crlDir"`
	} `json:"store" yaml:"store"`

	// Revocation: Revocation checking behavior
	Revocation struct {
		// Policy: One of "none", "offline", "online", or "auto"
		Policy string `json:"policy" yaml:"policy"`
		// TimeoutSeconds: HTTP timeout for CRL distribution point downloads
		TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	} `json:"revocation" yaml:"revocation"`

	// Signature: Detached signature verification behavior
	Signature struct {
		// Digest: Hash algorithm for detached signatures ("sha1", "sha256", "sha512")
		Digest string `json:"digest" yaml:"digest"`
	} `json:"signature" yaml:"signature"`
}

// detectConfigFormat determines the configuration file format based on file
// extension. Matching is case-insensitive; anything that is not .yaml or .yml
// is treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads verifier configuration from a JSON or YAML file or applies
// defaults.
//
// Configuration priority:
//  1. Default values are set
//  2. X509_VERIFY_CONFIG_FILE environment variable is checked if configPath
//     is empty
//  3. Config file values override defaults (if file exists and is valid)
//
// The file format is detected from the extension (.json, .yaml, or .yml).
// Invalid or non-positive numeric values fall back to defaults.
func Load(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Store.CADir = "/etc/pki/trust/cacerts"
	config.Store.CRLDir = "/etc/pki/trust/crls"
	config.Revocation.Policy = "auto"
	config.Revocation.TimeoutSeconds = 30
	config.Signature.Digest = "sha1"

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Revocation.Policy == "" {
			config.Revocation.Policy = "auto"
		}
		if config.Revocation.TimeoutSeconds <= 0 {
			config.Revocation.TimeoutSeconds = 30
		}
		if config.Signature.Digest == "" {
			config.Signature.Digest = "sha1"
		}
	}

	return config, nil
}
