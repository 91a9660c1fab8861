// Package levels loads platform layouts and tuning overrides from YAML,
// embedded by default and overridable from disk.
package levels

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/platformer/sim"
)

const Default = "arena.yaml"

type Spec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Spawn struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"spawn"`

	// Tuning carries partial overrides; absent keys keep their defaults.
	Tuning sim.Tuning `yaml:"tuning"`

	Platforms []PlatformSpec `yaml:"platforms"`
}

type PlatformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Load reads and validates a level by name ("arena" or "arena.yaml") and
// returns the geometry plus the effective tuning.
func Load(name string) (*sim.Level, sim.Tuning, error) {
	data, err := Read(name)
	if err != nil {
		return nil, sim.Tuning{}, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes a level spec from raw YAML.
func Parse(data []byte) (*sim.Level, sim.Tuning, error) {
	spec := Spec{Tuning: sim.DefaultTuning()}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, sim.Tuning{}, fmt.Errorf("levels: unmarshal: %w", err)
	}

	platforms := make([]cp.BB, 0, len(spec.Platforms))
	for _, p := range spec.Platforms {
		platforms = append(platforms, cp.BB{L: p.X, B: p.Y, R: p.X + p.W, T: p.Y + p.H})
	}

	lvl, err := sim.NewLevel(platforms, spec.Spawn.X, spec.Spawn.Y, spec.Width, spec.Height)
	if err != nil {
		return nil, sim.Tuning{}, err
	}
	return lvl, spec.Tuning, nil
}
