// Package yaml loads extraction configuration files.
package yaml

import (
	"fmt"
	"os"

	"github.com/fwojciec/lnsplit"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the config file layout. Pointer fields distinguish
// absent keys from zero values so a partial file only overrides what it
// names.
type fileConfig struct {
	TagThreshold    *float64 `yaml:"tag_threshold"`
	TagDenylist     []string `yaml:"tag_denylist"`
	MinTextLength   *int     `yaml:"min_text_length"`
	DropBoilerplate *bool    `yaml:"drop_boilerplate"`
}

// LoadConfig reads a YAML config file and applies it over the defaults.
// Keys missing from the file keep their default values. The merged
// configuration is validated before it is returned.
func LoadConfig(path string) (lnsplit.Config, error) {
	cfg := lnsplit.DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if fc.TagThreshold != nil {
		cfg.TagThreshold = *fc.TagThreshold
	}
	if fc.TagDenylist != nil {
		cfg.TagDenylist = fc.TagDenylist
	}
	if fc.MinTextLength != nil {
		cfg.MinTextLength = *fc.MinTextLength
	}
	if fc.DropBoilerplate != nil {
		cfg.DropBoilerplate = *fc.DropBoilerplate
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
