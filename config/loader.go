/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	tsevfs "bennypowers.dev/tsevaim/fs"
	"bennypowers.dev/tsevaim/internal/logger"
	"bennypowers.dev/tsevaim/schema"
	"bennypowers.dev/tsevaim/validator"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tsevaim"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/tsevaim.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem tsevfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, err
			}
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem tsevfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// LoadPalettes reads every configured palette file, in spec order, and
// merges them into one flat token→color mapping. Later files win on
// duplicate tokens. Each file's namespace, when set, is dot-prepended
// to the token names it contributes. Findings from the palette
// validator are reported to log as warnings; a nil log falls back to
// the process stderr logger.
func (c *Config) LoadPalettes(filesystem tsevfs.FileSystem, rootDir string, log schema.Logger) (map[string]string, error) {
	if log == nil {
		log = logger.Default
	}
	colors := make(map[string]string)

	for _, spec := range c.Palettes {
		paths, err := expandPalettePath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			entries, err := readPalette(filesystem, path)
			if err != nil {
				return nil, err
			}
			for name, value := range entries {
				if spec.Namespace != "" {
					name = spec.Namespace + "." + name
				}
				colors[name] = value
			}
		}
	}

	for _, finding := range validator.ValidatePalette(colors, c.Prefix, c.Divider) {
		log.Warnf("%s", finding.Error())
	}

	return colors, nil
}

// readPalette parses a palette file as a flat token→color mapping.
// JSON files may carry comments and trailing commas; anything else is
// treated as YAML.
func readPalette(filesystem tsevfs.FileSystem, path string) (map[string]string, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette %s: %w", path, err)
	}

	entries := map[string]string{}
	if isLikelyJSON(data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), &entries); err != nil {
			return nil, fmt.Errorf("failed to parse palette %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse palette %s: %w", path, err)
		}
	}

	return entries, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// expandPalettePath expands a single file path which may contain globs.
func expandPalettePath(filesystem tsevfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Not a glob, return the path directly (errors handled when file is read)
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem tsevfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	// Get the relative pattern from baseDir
	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		// Get path relative to baseDir for matching
		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		// Match against the pattern (doublestar handles both simple and ** globs)
		if matchDoublestar(relPattern, relPath) {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}

// matchDoublestar provides ** glob matching using the doublestar library.
// Supports patterns like palettes/**/colors.yaml
func matchDoublestar(pattern, path string) bool {
	matched, _ := doublestar.Match(pattern, path)
	return matched
}
