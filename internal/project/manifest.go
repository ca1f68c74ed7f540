// Package project loads the hidlgen.toml manifest that names the interface
// definition files of a binding package and where to put generated output.
package project

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a binding package root.
const ManifestName = "hidlgen.toml"

// Target names a generation backend.
type Target string

const (
	TargetCpp  Target = "cpp"
	TargetJava Target = "java"
)

// Manifest is the parsed hidlgen.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Output  OutputSection  `toml:"output"`

	// Dir is the directory the manifest was loaded from; definition paths
	// resolve relative to it.
	Dir string `toml:"-"`
}

// PackageSection describes the binding package itself.
type PackageSection struct {
	Name       string   `toml:"name"`
	Version    string   `toml:"version"`
	Interfaces []string `toml:"interfaces"`
}

// OutputSection controls generation.
type OutputSection struct {
	Dir     string   `toml:"dir"`
	Targets []string `toml:"targets"`
}

// Load parses a manifest file and validates its shape.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m.Dir = filepath.Dir(path)
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// Parse parses manifest content directly; used by tests and stdin input.
func Parse(content []byte, dir string) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	m.Dir = dir
	if err := m.check(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) check() error {
	if m.Package.Name == "" {
		return fmt.Errorf("missing [package].name")
	}
	if len(m.Package.Interfaces) == 0 {
		return fmt.Errorf("[package].interfaces lists no definition files")
	}
	seen := make(map[string]bool, len(m.Package.Interfaces))
	for _, rel := range m.Package.Interfaces {
		if seen[rel] {
			return fmt.Errorf("definition file %q listed twice", rel)
		}
		seen[rel] = true
	}
	for _, name := range m.Output.Targets {
		if Target(name) != TargetCpp && Target(name) != TargetJava {
			return fmt.Errorf("unknown target %q (want cpp or java)", name)
		}
	}
	return nil
}

// Targets returns the configured backends, defaulting to both.
func (m *Manifest) Targets() []Target {
	if len(m.Output.Targets) == 0 {
		return []Target{TargetCpp, TargetJava}
	}
	out := make([]Target, 0, len(m.Output.Targets))
	for _, name := range m.Output.Targets {
		out = append(out, Target(name))
	}
	return out
}

// HasTarget reports whether a backend is enabled.
func (m *Manifest) HasTarget(t Target) bool {
	return slices.Contains(m.Targets(), t)
}

// DefinitionPaths returns the definition files resolved against the manifest
// directory, in manifest order.
func (m *Manifest) DefinitionPaths() []string {
	out := make([]string, 0, len(m.Package.Interfaces))
	for _, rel := range m.Package.Interfaces {
		out = append(out, filepath.Join(m.Dir, rel))
	}
	return out
}

// OutputDir returns the output directory resolved against the manifest
// directory, defaulting to "gen".
func (m *Manifest) OutputDir() string {
	dir := m.Output.Dir
	if dir == "" {
		dir = "gen"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Dir, dir)
}
