/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks token palettes before schema generation.
package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tsevaim/token"
)

// ValidationError describes a problem with a palette entry.
type ValidationError struct {
	// Token is the token name the problem was found on.
	Token string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Token != "" {
		sb.WriteString(e.Token)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// ValidatePalette checks a flat token→color mapping. It reports:
//   - token names that are not namespace.name shaped
//   - empty color values
//   - color values the parser rejects
//   - distinct tokens that format to the same output key under the
//     given prefix and divider
//
// Findings are advisory: schema generation handles each of these with
// its own warn/skip policy.
func ValidatePalette(colors map[string]string, prefix, divider string) []ValidationError {
	var errs []ValidationError

	formatted := make(map[string]string, len(colors))
	for _, name := range sortedKeys(colors) {
		value := colors[name]

		if !token.Valid(name) {
			errs = append(errs, ValidationError{
				Token:      name,
				Message:    "token name is not namespace.name shaped",
				Suggestion: "use dot-delimited names like \"button.bg\"",
			})
		}

		if value == "" {
			errs = append(errs, ValidationError{
				Token:      name,
				Message:    "token has no color value",
				Suggestion: "set a color or remove the token",
			})
		} else if _, err := csscolorparser.Parse(value); err != nil {
			errs = append(errs, ValidationError{
				Token:      name,
				Message:    fmt.Sprintf("unparseable color value %q", value),
				Suggestion: "use hex, rgb(a), hsl(a) or a named color",
			})
		}

		key := token.Format(name, prefix, divider)
		if prior, collides := formatted[key]; collides {
			errs = append(errs, ValidationError{
				Token:      name,
				Message:    fmt.Sprintf("formats to %q, same as token %q", key, prior),
				Suggestion: "rename one token or pick a divider that cannot collide",
			})
		}
		formatted[key] = name
	}

	return errs
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
