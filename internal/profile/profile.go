// Package profile names common icon size sets.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a named set of icon edge lengths.
type Profile struct {
	Name  string `yaml:"name"`
	Sizes []int  `yaml:"sizes"`
}

// Built-in profiles.
var profiles = map[string]Profile{
	"standard": {
		Name:  "standard",
		Sizes: []int{16, 32, 48, 256},
	},
	"favicon": {
		Name:  "favicon",
		Sizes: []int{16, 32, 48},
	},
	"small": {
		Name:  "small",
		Sizes: []int{16, 32},
	},
}

// DefaultName is the profile used when none is requested.
const DefaultName = "standard"

// Get returns a profile by name. Falls back to standard if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles[DefaultName]
	p.Name = name // preserve requested name
	return p
}

// Known reports whether name is a built-in or loaded profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// LoadFile merges profiles from a YAML file over the built-ins.
// Size values are not validated here; normalization rejects
// unsupported sizes when a profile is actually used.
//
// File format:
//
//	profiles:
//	  - name: taskbar
//	    sizes: [16, 32]
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profiles file: %w", err)
	}

	var doc struct {
		Profiles []Profile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse profiles file: %w", err)
	}

	for _, p := range doc.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profiles file %s: profile with empty name", path)
		}
		if len(p.Sizes) == 0 {
			return fmt.Errorf("profiles file %s: profile %q has no sizes", path, p.Name)
		}
		profiles[p.Name] = p
	}
	return nil
}
