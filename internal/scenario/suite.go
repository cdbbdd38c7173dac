// Package scenario holds the data-driven fixture table: grid, dock and wrap
// scenarios loaded from YAML, with the track length grammar and validation
// rules that reject malformed fixtures before any layout runs.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// Kind identifies the panel a scenario exercises.
type Kind string

const (
	KindGrid Kind = "grid"
	KindDock Kind = "dock"
	KindWrap Kind = "wrap"
)

// Suite is a table of scenarios.
type Suite struct {
	Grids []Grid `yaml:"grids"`
	Docks []Dock `yaml:"docks"`
	Wraps []Wrap `yaml:"wraps"`

	// DockMatrix, when set, adds generated dock fixtures.
	DockMatrix *DockMatrixConfig `yaml:"dockMatrix,omitempty"`
}

// DockMatrixConfig parameterizes DockMatrix.
type DockMatrixConfig struct {
	Width   int   `yaml:"width"`
	Height  int   `yaml:"height"`
	Margins []int `yaml:"margins"`
}

// Load decodes and validates a suite. Unknown fields are rejected.
func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	if m := s.DockMatrix; m != nil {
		s.Docks = append(s.Docks, DockMatrix(m.Width, m.Height, m.Margins)...)
		s.DockMatrix = nil
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads a suite from a YAML file.
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenarios: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the built-in scenario table.
func Default() (*Suite, error) {
	return Load(bytes.NewReader(defaultScenarios))
}

// Validate checks every scenario and rejects duplicate names.
func (s *Suite) Validate() error {
	seen := make(map[string]Kind)
	add := func(name string, kind Kind) error {
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s %s: %w: name already used by a %s scenario", kind, name, ErrContradictory, prev)
		}
		seen[name] = kind
		return nil
	}

	for _, g := range s.Grids {
		if err := g.Validate(); err != nil {
			return err
		}
		if err := add(g.Name, KindGrid); err != nil {
			return err
		}
	}
	for _, d := range s.Docks {
		if err := d.Validate(); err != nil {
			return err
		}
		if err := add(d.Name, KindDock); err != nil {
			return err
		}
	}
	for _, w := range s.Wraps {
		if err := w.Validate(); err != nil {
			return err
		}
		if err := add(w.Name, KindWrap); err != nil {
			return err
		}
	}
	return nil
}

// Merge adds other's scenarios to s. A scenario of other replaces one of
// the same kind and name in s.
func (s *Suite) Merge(other *Suite) {
	if other == nil {
		return
	}
	s.Grids = mergeByName(s.Grids, other.Grids, func(g Grid) string { return g.Name })
	s.Docks = mergeByName(s.Docks, other.Docks, func(d Dock) string { return d.Name })
	s.Wraps = mergeByName(s.Wraps, other.Wraps, func(w Wrap) string { return w.Name })
}

// ApplyScale sets the scale of every grid that does not declare its own.
func (s *Suite) ApplyScale(f float64) {
	for i := range s.Grids {
		if s.Grids[i].Scale == 0 {
			s.Grids[i].Scale = Scale(f)
		}
	}
}

func mergeByName[T any](base, extra []T, name func(T) string) []T {
	index := make(map[string]int, len(base))
	for i, v := range base {
		index[name(v)] = i
	}
	for _, v := range extra {
		if i, ok := index[name(v)]; ok {
			base[i] = v
			continue
		}
		index[name(v)] = len(base)
		base = append(base, v)
	}
	return base
}

// Grid returns the grid scenario with the given name.
func (s *Suite) Grid(name string) (Grid, error) {
	for _, g := range s.Grids {
		if g.Name == name {
			return g, nil
		}
	}
	return Grid{}, fmt.Errorf("grid %q: %w", name, ErrUnknownScenario)
}

// Dock returns the dock scenario with the given name.
func (s *Suite) Dock(name string) (Dock, error) {
	for _, d := range s.Docks {
		if d.Name == name {
			return d, nil
		}
	}
	return Dock{}, fmt.Errorf("dock %q: %w", name, ErrUnknownScenario)
}

// Wrap returns the wrap scenario with the given name.
func (s *Suite) Wrap(name string) (Wrap, error) {
	for _, w := range s.Wraps {
		if w.Name == name {
			return w, nil
		}
	}
	return Wrap{}, fmt.Errorf("wrap %q: %w", name, ErrUnknownScenario)
}

// KindOf reports which kind of scenario has the given name.
func (s *Suite) KindOf(name string) (Kind, error) {
	for kind, names := range s.Names() {
		for _, n := range names {
			if n == name {
				return kind, nil
			}
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownScenario)
}

// Names returns the sorted scenario names of each kind.
func (s *Suite) Names() map[Kind][]string {
	out := map[Kind][]string{KindGrid: {}, KindDock: {}, KindWrap: {}}
	for _, g := range s.Grids {
		out[KindGrid] = append(out[KindGrid], g.Name)
	}
	for _, d := range s.Docks {
		out[KindDock] = append(out[KindDock], d.Name)
	}
	for _, w := range s.Wraps {
		out[KindWrap] = append(out[KindWrap], w.Name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}
