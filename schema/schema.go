/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema generates theme schemas from flat design-token palettes.
//
// A Builder turns a token→color mapping into a mapping of formatted
// output keys to serialized color values, deriving configurable variant
// colors (lighter, darker, …) for tokens whose names end in a scoped
// suffix such as .bg or .fg.
package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"bennypowers.dev/tsevaim/dye"
	"bennypowers.dev/tsevaim/internal/logger"
	"bennypowers.dev/tsevaim/token"
)

// Schema maps formatted token keys to serialized color values.
type Schema map[string]string

// Variant derives a new color from a base color.
type Variant func(c dye.Color) dye.Color

// Serializer converts a processed color to its output value.
// name is the token name for base entries and the variant name for
// derived entries.
type Serializer func(c dye.Color, name string) string

// Logger is the warn/error sink the builder reports to.
type Logger interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultVariantAmount is the lightness delta of the default variants.
const DefaultVariantAmount = 0.12

// DefaultVariants returns the lighter/darker variant set.
func DefaultVariants() map[string]Variant {
	return map[string]Variant{
		"lighter": func(c dye.Color) dye.Color { return c.Lighten(DefaultVariantAmount) },
		"darker":  func(c dye.Color) dye.Color { return c.Darken(DefaultVariantAmount) },
	}
}

// DefaultSerializer produces an rgb() value for valid colors and echoes
// the raw input for invalid ones.
func DefaultSerializer(c dye.Color, name string) string {
	return c.CSS()
}

// Options configures a Builder. Colors is required; every other field
// has a default.
type Options struct {
	// Colors is the base token→value mapping. Its keys define the
	// token registry, fixed at construction.
	Colors map[string]string

	// Scope lists the name suffixes that trigger variant generation.
	// Defaults to bg/fg/foreground/background.
	Scope token.Scope

	// Variants are the named transforms applied to scoped tokens.
	// A non-nil map fully replaces the defaults.
	Variants map[string]Variant

	// Prefix is prepended to every formatted output key.
	Prefix string

	// Divider replaces "." in token names and separates variant
	// suffixes. Defaults to ".".
	Divider string

	// Serializer converts processed colors to output values.
	Serializer Serializer

	// Logger receives warnings and errors. Defaults to the process
	// stderr logger.
	Logger Logger

	// Strict converts every warning and error into a build failure.
	Strict bool
}

// Builder generates theme schemas from a fixed token registry.
// It is not safe for concurrent use.
type Builder struct {
	colors     map[string]string
	registry   map[string]struct{}
	scope      token.Scope
	variants   map[string]Variant
	prefix     string
	divider    string
	serializer Serializer
	logger     Logger
	strict     bool

	// base is the cached no-override schema. Once populated it is
	// never invalidated for the lifetime of the builder.
	base Schema
}

// New creates a Builder from opts.
func New(opts Options) (*Builder, error) {
	if len(opts.Colors) == 0 {
		return nil, fmt.Errorf("schema: Options.Colors is required")
	}

	b := &Builder{
		colors:     maps.Clone(opts.Colors),
		registry:   make(map[string]struct{}, len(opts.Colors)),
		scope:      opts.Scope,
		variants:   opts.Variants,
		prefix:     opts.Prefix,
		divider:    opts.Divider,
		serializer: opts.Serializer,
		logger:     opts.Logger,
		strict:     opts.Strict,
	}
	for name := range b.colors {
		b.registry[name] = struct{}{}
	}

	if b.scope == nil {
		b.scope = token.DefaultScope()
	}
	if b.variants == nil {
		b.variants = DefaultVariants()
	}
	if b.divider == "" {
		b.divider = token.Divider
	}
	if b.serializer == nil {
		b.serializer = DefaultSerializer
	}
	if b.logger == nil {
		b.logger = logger.Default
	}

	return b, nil
}

// Generate builds a theme schema.
//
// With nil overrides it builds (and caches) the base schema from the
// construction-time colors; repeat calls return the cached result
// without recomputation. With overrides it builds a schema from the
// override mapping alone and shallow-merges it on top of the cached
// base schema when one exists; the cache is never invalidated.
//
// In non-strict mode the returned error is always nil: problem tokens
// are logged and skipped. In strict mode the first problem aborts the
// build.
func (b *Builder) Generate(overrides map[string]string) (Schema, error) {
	if overrides == nil {
		if b.base != nil {
			return maps.Clone(b.base), nil
		}
		built, err := b.build(b.colors)
		if err != nil {
			return nil, err
		}
		b.base = built
		return maps.Clone(built), nil
	}

	built, err := b.build(overrides)
	if err != nil {
		return nil, err
	}
	if b.base != nil {
		merged := maps.Clone(b.base)
		maps.Copy(merged, built)
		return merged, nil
	}
	return built, nil
}

// build runs the single generation pass over colors.
// Token and variant names are visited in sorted order so that duplicate
// derivations overwrite deterministically.
func (b *Builder) build(colors map[string]string) (Schema, error) {
	out := make(Schema, len(colors)*(1+len(b.variants)))
	variantNames := sortedKeys(b.variants)

	for _, name := range sortedKeys(colors) {
		value := colors[name]

		if _, registered := b.registry[name]; !registered {
			if err := b.warnf(ErrUnregisteredToken, "token %q not in registry. Skipping...", name); err != nil {
				return nil, err
			}
			continue
		}
		if value == "" {
			if err := b.warnf(ErrMissingValue, "token %q has no color. Skipping...", name); err != nil {
				return nil, err
			}
			continue
		}

		// Base entries are emitted even when parsing failed; only
		// variant outputs are validity-checked.
		c := dye.Parse(value)
		key := token.Format(name, b.prefix, b.divider)
		out[key] = b.serializer(c, name)

		if !b.scope.Matches(name) {
			continue
		}
		for _, variantName := range variantNames {
			derived := b.variants[variantName](c)
			if !derived.Valid() {
				if err := b.errorf(ErrInvalidVariant, "variant %q of token %q produced invalid color. Skipping...", variantName, name); err != nil {
					return nil, err
				}
				continue
			}
			out[key+b.divider+variantName] = b.serializer(derived, variantName)
		}
	}

	return out, nil
}

// warnf logs a recoverable condition, or fails the build in strict mode.
func (b *Builder) warnf(kind error, format string, args ...any) error {
	if b.strict {
		return strictError(kind, format, args...)
	}
	b.logger.Warnf(format, args...)
	return nil
}

// errorf logs an error condition, or fails the build in strict mode.
func (b *Builder) errorf(kind error, format string, args ...any) error {
	if b.strict {
		return strictError(kind, format, args...)
	}
	b.logger.Errorf(format, args...)
	return nil
}

// strictError converts a logged message into a build failure, dropping
// the trailing "Skipping..." since nothing is skipped in strict mode.
func strictError(kind error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimSuffix(msg, " Skipping...")
	return fmt.Errorf("%w: %s", kind, msg)
}

// sortedKeys returns the keys of m in sorted order.
// Equivalent to slices.Sorted(maps.Keys(m)), which needs go1.23.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
