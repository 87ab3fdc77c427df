// Package config loads project-level validation settings from veridoc.yml.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

//go:embed default.yml
var defaultProfile []byte

// ProjectConfig holds project-level settings loaded from veridoc.yml.
type ProjectConfig struct {
	Tier              string             `yaml:"tier,omitempty"`
	Enrichment        bool               `yaml:"enrichment,omitempty"`
	SpecialistTimeout string             `yaml:"specialistTimeout,omitempty"`
	Weights           map[string]float64 `yaml:"weights,omitempty"`
	ExtraSpecialists  []string           `yaml:"extraSpecialists,omitempty"`
	Evaluators        map[string]string  `yaml:"evaluators,omitempty"`
	Listen            string             `yaml:"listen,omitempty"`
	Verbose           bool               `yaml:"verbose,omitempty"`
}

// Load attempts to read veridoc.yml or veridoc.yaml from the given
// directory. Falls back to the embedded default profile (not an error)
// if no config file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"veridoc.yml", "veridoc.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return &cfg, nil
	}
	return Default()
}

// Default returns the embedded default profile.
func Default() (*ProjectConfig, error) {
	var cfg ProjectConfig
	if err := yaml.Unmarshal(defaultProfile, &cfg); err != nil {
		return nil, fmt.Errorf("parse embedded default profile: %w", err)
	}
	return &cfg, nil
}

// EngineConfig converts the loaded profile to an engine configuration.
func (c *ProjectConfig) EngineConfig() (ensemble.Config, error) {
	cfg := ensemble.DefaultConfig()
	cfg.Enrichment = c.Enrichment

	if c.SpecialistTimeout != "" {
		d, err := time.ParseDuration(c.SpecialistTimeout)
		if err != nil {
			return ensemble.Config{}, fmt.Errorf("specialistTimeout: %w", err)
		}
		cfg.SpecialistTimeout = d
	}

	if len(c.Weights) > 0 {
		weights := ensemble.DefaultWeights()
		for name, w := range c.Weights {
			kind, ok := ensemble.ParseKind(name)
			if !ok {
				return ensemble.Config{}, fmt.Errorf("weights: unknown specialist %q", name)
			}
			if w < 0 {
				return ensemble.Config{}, fmt.Errorf("weights: negative weight for %q", name)
			}
			weights[kind] = w
		}
		cfg.Weights = weights
	}

	for _, name := range c.ExtraSpecialists {
		kind, ok := ensemble.ParseKind(name)
		if !ok {
			return ensemble.Config{}, fmt.Errorf("extraSpecialists: unknown specialist %q", name)
		}
		cfg.ExtraSpecialists = append(cfg.ExtraSpecialists, kind)
	}

	return cfg, nil
}

// RemoteEvaluators resolves the evaluators block to typed kind/URL pairs.
func (c *ProjectConfig) RemoteEvaluators() (map[ensemble.SpecialistKind]string, error) {
	if len(c.Evaluators) == 0 {
		return nil, nil
	}
	out := make(map[ensemble.SpecialistKind]string, len(c.Evaluators))
	for name, url := range c.Evaluators {
		kind, ok := ensemble.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("evaluators: unknown specialist %q", name)
		}
		out[kind] = url
	}
	return out, nil
}
