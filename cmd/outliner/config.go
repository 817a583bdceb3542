package main

import (
	"fmt"
	"os"
	"regexp"

	yaml "gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/layout"
)

// FileConfig is the YAML schema for tuning the heading heuristics. Zero
// values keep the built-in defaults; ignorePatterns, when present, replaces
// the default pattern set entirely.
type FileConfig struct {
	Line struct {
		MergeTolerance float64 `yaml:"mergeTolerance"`
		SpaceGapRatio  float64 `yaml:"spaceGapRatio"`
	} `yaml:"line"`

	Heading struct {
		SizeTolerance   float64  `yaml:"sizeTolerance"`
		MinTitleMargin  float64  `yaml:"minTitleMargin"`
		MinTitleLength  int      `yaml:"minTitleLength"`
		LargeSizeMargin float64  `yaml:"largeSizeMargin"`
		IgnorePatterns  []string `yaml:"ignorePatterns"`
	} `yaml:"heading"`
}

// loadConfig returns the default heuristics, overlaid with the YAML file at
// path if one is given.
func loadConfig(path string) (layout.Config, error) {
	cfg := layout.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return mergeConfig(cfg, fc)
}

// mergeConfig overlays file values onto the defaults
func mergeConfig(cfg layout.Config, fc FileConfig) (layout.Config, error) {
	if fc.Line.MergeTolerance > 0 {
		cfg.Line.MergeTolerance = fc.Line.MergeTolerance
	}
	if fc.Line.SpaceGapRatio > 0 {
		cfg.Line.SpaceGapRatio = fc.Line.SpaceGapRatio
	}
	if fc.Heading.SizeTolerance > 0 {
		cfg.Heading.SizeTolerance = fc.Heading.SizeTolerance
	}
	if fc.Heading.MinTitleMargin > 0 {
		cfg.Heading.MinTitleMargin = fc.Heading.MinTitleMargin
	}
	if fc.Heading.MinTitleLength > 0 {
		cfg.Heading.MinTitleLength = fc.Heading.MinTitleLength
	}
	if fc.Heading.LargeSizeMargin > 0 {
		cfg.Heading.LargeSizeMargin = fc.Heading.LargeSizeMargin
	}

	if len(fc.Heading.IgnorePatterns) > 0 {
		patterns := make([]*regexp.Regexp, 0, len(fc.Heading.IgnorePatterns))
		for _, p := range fc.Heading.IgnorePatterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return cfg, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
			}
			patterns = append(patterns, re)
		}
		cfg.Heading.IgnorePatterns = patterns
	}

	return cfg, nil
}
