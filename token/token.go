/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides naming helpers for dot-delimited design tokens.
package token

import "strings"

// Divider is the default separator for formatted output keys.
const Divider = "."

// Format returns the output key for a token name.
// Every "." in the name is replaced with divider, and prefix is prepended.
// e.g. Format("accent.fg", "--", "-") == "--accent-fg"
func Format(name, prefix, divider string) string {
	if divider == "" {
		divider = Divider
	}
	return prefix + strings.ReplaceAll(name, ".", divider)
}

// Namespace returns the part of a token name before the first dot,
// or the whole name when it has no dot.
func Namespace(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// Base returns the part of a token name after the last dot,
// or the whole name when it has no dot.
func Base(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Valid reports whether name has the namespace.name shape:
// at least two non-empty dot-delimited segments.
func Valid(name string) bool {
	if name == "" {
		return false
	}
	segments := strings.Split(name, ".")
	if len(segments) < 2 {
		return false
	}
	for _, s := range segments {
		if s == "" {
			return false
		}
	}
	return true
}

// Scope is a set of name suffixes that mark tokens eligible for
// variant generation.
type Scope []string

// DefaultScope returns the suffixes scoped by default.
func DefaultScope() Scope {
	return Scope{"bg", "fg", "foreground", "background"}
}

// Matches reports whether name ends with "." followed by one of the
// scope suffixes.
func (s Scope) Matches(name string) bool {
	for _, suffix := range s {
		if strings.HasSuffix(name, "."+suffix) {
			return true
		}
	}
	return false
}
