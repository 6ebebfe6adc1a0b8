package quiz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a bank document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed default.yaml
var defaultBank []byte

// Default returns the built-in question bank.
func Default() (*Bank, error) {
	b, err := Parse(defaultBank, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("parse built-in bank: %w", err)
	}
	return b, nil
}

// Load reads a bank from path. The format follows the file extension:
// .json is JSON, .yaml and .yml are YAML.
func Load(path string) (*Bank, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	b, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// LoadOrDefault loads path, or the built-in bank when path is empty.
func LoadOrDefault(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported bank file extension %q: use .json, .yaml or .yml", filepath.Ext(path))
	}
}

// Parse decodes and validates a bank document.
func Parse(data []byte, format Format) (*Bank, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatYAML:
		// Normalize YAML through JSON so schema validation sees the
		// same value shapes for both formats.
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		return parseJSON(raw)
	default:
		return nil, fmt.Errorf("unknown bank format %q", format)
	}
}

func parseJSON(data []byte) (*Bank, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.Version = canonicalVersion(b.Version)
	return &b, nil
}
