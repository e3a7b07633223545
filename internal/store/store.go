// Package store persists finalized configuration documents for later code
// generation. The file extension selects the encoding: .json and .yaml/.yml
// round-trip, .hcl is written for reading by people and HCL tooling only.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/webpack"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the store file written into the project directory.
const DefaultPath = ".packinit.json"

// ErrUnsupported is returned when a format cannot perform an operation.
var ErrUnsupported = errors.New("unsupported store format")

// Format is a store encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	HCL  Format = "hcl"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".hcl":
		return HCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
	}
}

// Record is the stored layout: the document lives under configuration.config.
type Record struct {
	Configuration Configuration `json:"configuration" yaml:"configuration"`
}

// Configuration wraps the stored document.
type Configuration struct {
	Config webpack.Document `json:"config" yaml:"config"`
}

// Encode serializes doc in the given format.
func Encode(f Format, doc webpack.Document) ([]byte, error) {
	rec := Record{Configuration: Configuration{Config: doc}}
	switch f {
	case JSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case YAML:
		return yaml.Marshal(rec)
	case HCL:
		return encodeHCL(doc), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, f)
	}
}

// Decode parses a stored document.
func Decode(f Format, data []byte) (webpack.Document, error) {
	var rec Record
	switch f {
	case JSON:
		if err := json.Unmarshal(data, &rec); err != nil {
			return webpack.Document{}, fmt.Errorf("failed to decode JSON store: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return webpack.Document{}, fmt.Errorf("failed to decode YAML store: %w", err)
		}
	default:
		return webpack.Document{}, fmt.Errorf("%w: cannot decode %q", ErrUnsupported, f)
	}
	return rec.Configuration.Config, nil
}

// Save writes doc to path, creating parent directories.
func Save(ctx context.Context, path string, doc webpack.Document) error {
	logger := ctxlog.FromContext(ctx)

	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store %s: %w", path, err)
	}
	logger.Debug("Document stored.", "path", path, "format", f, "bytes", len(data))
	return nil
}

// Load reads a document saved by Save.
func Load(path string) (webpack.Document, error) {
	f, err := FormatFor(path)
	if err != nil {
		return webpack.Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return webpack.Document{}, err
	}
	return Decode(f, data)
}
