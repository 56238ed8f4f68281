/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for theme schema generation.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tsevaim/dye"
	"bennypowers.dev/tsevaim/schema"
	"bennypowers.dev/tsevaim/token"
)

// Config represents the theme generation configuration.
type Config struct {
	// Prefix is prepended to every formatted output key.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Divider replaces "." in token names (default ".").
	Divider string `yaml:"divider" json:"divider"`

	// Scope lists the suffixes that trigger variant generation.
	Scope []string `yaml:"scope" json:"scope"`

	// Variants are named transform specs. When present they fully
	// replace the default lighter/darker set.
	Variants map[string]VariantSpec `yaml:"variants" json:"variants"`

	// Palettes specifies palette files to load (paths or specs).
	Palettes []FileSpec `yaml:"palettes" json:"palettes"`

	// Strict converts every warning into a build failure.
	Strict bool `yaml:"strict" json:"strict"`
}

// VariantSpec describes a color transform by operation name and amount.
type VariantSpec struct {
	// Op is one of: lighten, darken, saturate, desaturate, alpha.
	Op string `yaml:"op" json:"op"`

	// Amount is the transform intensity in [0,1].
	Amount float64 `yaml:"amount" json:"amount"`
}

// Variant converts the spec to a schema.Variant.
func (v VariantSpec) Variant() (schema.Variant, error) {
	amount := v.Amount
	switch v.Op {
	case "lighten":
		return func(c dye.Color) dye.Color { return c.Lighten(amount) }, nil
	case "darken":
		return func(c dye.Color) dye.Color { return c.Darken(amount) }, nil
	case "saturate":
		return func(c dye.Color) dye.Color { return c.Saturate(amount) }, nil
	case "desaturate":
		return func(c dye.Color) dye.Color { return c.Desaturate(amount) }, nil
	case "alpha":
		return func(c dye.Color) dye.Color { return c.WithAlpha(amount) }, nil
	default:
		return nil, fmt.Errorf("unknown variant op %q", v.Op)
	}
}

// FileSpec represents a palette file specification.
// It can be specified as a simple string path or as an object with a
// namespace that is prepended to every token loaded from the file.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Namespace is prepended (dot-joined) to token names from this file,
	// so a file of bare bg/fg entries can serve one component.
	Namespace string `yaml:"namespace" json:"namespace"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Prefix:  "",
		Divider: "",
		Scope:   nil,
		Strict:  false,
	}
}

// SchemaVariants converts the configured variant specs.
// Returns nil when no variants are configured, so the builder keeps its
// defaults.
func (c *Config) SchemaVariants() (map[string]schema.Variant, error) {
	if len(c.Variants) == 0 {
		return nil, nil
	}
	variants := make(map[string]schema.Variant, len(c.Variants))
	for name, spec := range c.Variants {
		v, err := spec.Variant()
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", name, err)
		}
		variants[name] = v
	}
	return variants, nil
}

// BuilderOptions assembles schema.Options for the given base palette.
func (c *Config) BuilderOptions(colors map[string]string) (schema.Options, error) {
	variants, err := c.SchemaVariants()
	if err != nil {
		return schema.Options{}, err
	}

	var scope token.Scope
	if len(c.Scope) > 0 {
		scope = token.Scope(c.Scope)
	}

	return schema.Options{
		Colors:   colors,
		Scope:    scope,
		Variants: variants,
		Prefix:   c.Prefix,
		Divider:  c.Divider,
		Strict:   c.Strict,
	}, nil
}

// PalettePaths returns the list of file paths from all palette specs.
func (c *Config) PalettePaths() []string {
	paths := make([]string, 0, len(c.Palettes))
	for _, spec := range c.Palettes {
		paths = append(paths, spec.Path)
	}
	return paths
}
