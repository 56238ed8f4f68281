/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// ParseJSON parses data as a flat token→color mapping and generates a
// schema from it as an override set.
//
// Comments and trailing commas are tolerated. Input that does not
// unmarshal into a string→string mapping returns ErrMalformedJSON; a
// parse failure is surfaced to the caller, never swallowed.
//
// When no base schema has been generated yet, override tokens are
// validated against the registry but nothing is merged under them, so a
// warning recommends generating the base schema first. In strict mode
// that condition fails the build with ErrNoBaseSchema.
func (b *Builder) ParseJSON(data []byte) (Schema, error) {
	var overrides map[string]string
	if err := json.Unmarshal(jsonc.ToJSON(data), &overrides); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if overrides == nil {
		overrides = map[string]string{}
	}

	if b.base == nil {
		if err := b.warnf(ErrNoBaseSchema, "no base schema cached yet; generate one first to merge overrides onto the full palette"); err != nil {
			return nil, err
		}
	}

	return b.Generate(overrides)
}
