/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides human-readable previews of generated schemas.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tsevaim/schema"
)

// Row holds computed display values for a single schema entry.
type Row struct {
	Key     string // formatted output key
	Value   string // serialized color value
	Group   string // first key segment, for markdown grouping
	IsColor bool   // whether Value parses as a color
}

// Options configures row computation.
type Options struct {
	// Divider is the output key divider the schema was built with.
	// It is only used to derive markdown groups. Defaults to ".".
	Divider string
}

// ComputeRows transforms a schema into display rows, sorted by key.
func ComputeRows(s schema.Schema, opts Options) []Row {
	divider := opts.Divider
	if divider == "" {
		divider = "."
	}

	rows := make([]Row, 0, len(s))
	for _, key := range sortedKeys(s) {
		value := s[key]
		row := Row{
			Key:   key,
			Value: value,
			Group: groupOf(key, divider),
		}
		if _, err := csscolorparser.Parse(value); err == nil {
			row.IsColor = true
		}
		rows = append(rows, row)
	}
	return rows
}

// groupOf returns the first divider-delimited segment of a key,
// ignoring a leading run of divider characters (e.g. a "--" prefix).
func groupOf(key, divider string) string {
	trimmed := strings.TrimLeft(key, divider)
	if i := strings.Index(trimmed, divider); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned two-column table with swatches.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	keyW := 3
	for _, r := range rows {
		if len(r.Key) > keyW {
			keyW = len(r.Key)
		}
	}
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		if _, err := fmt.Fprintf(w, "%-*s  %s%s\n", keyW, r.Key, swatch, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by key namespace.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows, preserving order of first occurrence (rows arrive sorted)
	groupOrder := make([]string, 0)
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byGroup[r.Group]; !exists {
			groupOrder = append(groupOrder, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	caser := cases.Title(language.English)
	first := true
	for _, group := range groupOrder {
		rows := byGroup[group]
		if !first {
			fmt.Fprintln(w)
		}
		first = false

		fmt.Fprintf(w, "## %s\n\n", caser.String(group))

		keyW, valW := 3, 5
		for _, r := range rows {
			if len(r.Key) > keyW {
				keyW = len(r.Key)
			}
			if len(r.Value) > valW {
				valW = len(r.Value)
			}
		}

		fmt.Fprintf(w, "| %-*s | %-*s |\n", keyW, "Key", valW, "Value")
		fmt.Fprintf(w, "|-%s-|-%s-|\n", strings.Repeat("-", keyW), strings.Repeat("-", valW))
		for _, r := range rows {
			fmt.Fprintf(w, "| %-*s | %-*s |\n", keyW, r.Key, valW, r.Value)
		}
	}
	return nil
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
