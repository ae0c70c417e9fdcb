// Package config loads the optional run configuration. Everything has
// a built-in default; a YAML file only overrides what it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcpv/episcreen/internal/diagnosis"
)

// Config holds the tunable pieces of a scoring run.
type Config struct {
	// ExtendedFlags adds the sub-typing flag columns and decision
	// blocks to the pipeline.
	ExtendedFlags bool `yaml:"extended_flags"`

	Thresholds struct {
		Screening   int `yaml:"screening"`
		Focal       int `yaml:"focal"`
		Generalized int `yaml:"generalized"`
	} `yaml:"thresholds"`

	BillingCodes struct {
		NonEpilepsy  []string `yaml:"non_epilepsy"`
		Focal        []string `yaml:"focal"`
		Generalized  []string `yaml:"generalized"`
		UnknownOnset []string `yaml:"unknown_onset"`
	} `yaml:"billing_codes"`
}

// Default returns the reference-algorithm configuration.
func Default() *Config {
	cfg := &Config{}
	t := diagnosis.DefaultThresholds()
	cfg.Thresholds.Screening = t.Screening
	cfg.Thresholds.Focal = t.Focal
	cfg.Thresholds.Generalized = t.Generalized

	sets := diagnosis.DefaultCodeSets()
	cfg.BillingCodes.NonEpilepsy = sets.NonEpilepsy
	cfg.BillingCodes.Focal = sets.Focal
	cfg.BillingCodes.Generalized = sets.Generalized
	cfg.BillingCodes.UnknownOnset = sets.UnknownOnset
	return cfg
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	return cfg, nil
}

// DiagnosisThresholds returns the configured decision-block gates.
func (c *Config) DiagnosisThresholds() diagnosis.Thresholds {
	return diagnosis.Thresholds{
		Screening:   c.Thresholds.Screening,
		Focal:       c.Thresholds.Focal,
		Generalized: c.Thresholds.Generalized,
	}
}

// CodeSets returns the configured billing-code prefix groups.
func (c *Config) CodeSets() diagnosis.CodeSets {
	return diagnosis.CodeSets{
		NonEpilepsy:  c.BillingCodes.NonEpilepsy,
		Focal:        c.BillingCodes.Focal,
		Generalized:  c.BillingCodes.Generalized,
		UnknownOnset: c.BillingCodes.UnknownOnset,
	}
}
