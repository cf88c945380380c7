// Package config loads the optional YAML profile for the md2slack CLI.
//
// A profile pins output defaults and overrides the platform ceilings, so a
// team can keep one checked-in file instead of repeating flags:
//
//	output:
//	  mode: blocks
//	limits:
//	  maxBlocks: 25
//	preview:
//	  style: monokai
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2slack/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidMode    = errors.New("invalid output mode")
	ErrNegativeLimit  = errors.New("limit override cannot be negative")
)

// Output modes understood by the CLI.
const (
	ModeBlocks  = "blocks"
	ModeInline  = "inline"
	ModePreview = "preview"
)

// Config holds all configuration for message compilation.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Limits  LimitsConfig  `yaml:"limits"`
	Preview PreviewConfig `yaml:"preview"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Mode string `yaml:"mode"` // "blocks", "inline", "preview" (empty = blocks)
	Path string `yaml:"path"` // Default output file (empty = stdout)
}

// LimitsConfig overrides platform ceilings. Zero means "use the default";
// the ceilings themselves live in the root package.
type LimitsConfig struct {
	HeaderLimit  int `yaml:"headerLimit"`
	SectionLimit int `yaml:"sectionLimit"`
	MaxBlocks    int `yaml:"maxBlocks"`
	MaxTableRows int `yaml:"maxTableRows"`
	MaxTableCols int `yaml:"maxTableCols"`
}

// PreviewConfig defines HTML preview options.
type PreviewConfig struct {
	Style string `yaml:"style"` // chroma style name (empty = default)
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks mode and limit overrides.
func (c *Config) Validate() error {
	switch c.Output.Mode {
	case "", ModeBlocks, ModeInline, ModePreview:
	default:
		return fmt.Errorf("%w: %q (must be blocks, inline, or preview)", ErrInvalidMode, c.Output.Mode)
	}

	overrides := map[string]int{
		"headerLimit":  c.Limits.HeaderLimit,
		"sectionLimit": c.Limits.SectionLimit,
		"maxBlocks":    c.Limits.MaxBlocks,
		"maxTableRows": c.Limits.MaxTableRows,
		"maxTableCols": c.Limits.MaxTableCols,
	}
	for name, v := range overrides {
		if v < 0 {
			return fmt.Errorf("%w: %s = %d", ErrNegativeLimit, name, v)
		}
	}
	return nil
}
