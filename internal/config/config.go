// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/itsmostafa/mdtoc/internal/toc"
)

// DefaultFileName is the config file looked up under the root directory.
const DefaultFileName = ".mdtoc.yaml"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Config holds the document discovery and marker settings.
type Config struct {
	Files   []string      `yaml:"files"`
	Markers MarkersConfig `yaml:"markers"`
}

// MarkersConfig defines the sentinel lines around the generated region.
type MarkersConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Files: slices.Clone(toc.DefaultFiles),
		Markers: MarkersConfig{
			Start: toc.DefaultStartMarker,
			End:   toc.DefaultEndMarker,
		},
	}
}

// Load reads the config file at path. When required is false a missing
// file yields the defaults; otherwise it is an error.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, rejecting unknown fields. Missing
// settings keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	var raw Config
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if raw.Files != nil {
		cfg.Files = raw.Files
	}
	if raw.Markers.Start != "" {
		cfg.Markers.Start = raw.Markers.Start
	}
	if raw.Markers.End != "" {
		cfg.Markers.End = raw.Markers.End
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings can locate a document and delimit a region.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return fmt.Errorf("%w: files cannot be empty", ErrInvalidConfig)
	}
	for _, name := range c.Files {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: files cannot contain an empty name", ErrInvalidConfig)
		}
	}
	if c.Markers.Start == c.Markers.End {
		return fmt.Errorf("%w: start and end markers must differ", ErrInvalidConfig)
	}
	return nil
}

// TOCMarkers converts the marker settings for the toc package.
func (c *Config) TOCMarkers() toc.Markers {
	return toc.Markers{Start: c.Markers.Start, End: c.Markers.End}
}
