package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/hmcsim/internal/dynamo"
	"github.com/san-kum/hmcsim/internal/target"
)

const (
	DefaultTarget   = "bimodal"
	DefaultSamples  = 1000
	DefaultStepSize = 0.1
	DefaultNumSteps = 10
)

type Config struct {
	Target   string      `yaml:"target"`
	Samples  int         `yaml:"samples"`
	StepSize float64     `yaml:"step_size"`
	NumSteps int         `yaml:"num_steps"`
	Seed     *uint64     `yaml:"seed,omitempty"`
	Start    StartConfig `yaml:"start"`
	Log      LogConfig   `yaml:"log"`
}

type StartConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

func DefaultConfig() *Config {
	return &Config{
		Target:   DefaultTarget,
		Samples:  DefaultSamples,
		StepSize: DefaultStepSize,
		NumSteps: DefaultNumSteps,
		Log:      LogConfig{Level: "info"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}

// Variant resolves the configured target name.
func (c *Config) Variant() (target.Variant, error) {
	return target.ParseVariant(c.Target)
}

func (c *Config) Chain() dynamo.Config {
	return dynamo.Config{
		Samples:  c.Samples,
		StepSize: c.StepSize,
		NumSteps: c.NumSteps,
		Start:    dynamo.Vec{X: c.Start.X, Y: c.Start.Y},
	}
}

// Validate checks the target name and chain parameters.
func (c *Config) Validate() error {
	if _, err := c.Variant(); err != nil {
		return err
	}
	return c.Chain().Validate()
}
