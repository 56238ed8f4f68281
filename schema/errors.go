/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for schema generation.
var (
	// ErrUnregisteredToken indicates an input token absent from the registry.
	ErrUnregisteredToken = errors.New("token not in registry")

	// ErrMissingValue indicates a token mapped to an empty color value.
	ErrMissingValue = errors.New("token has no color")

	// ErrInvalidVariant indicates a variant transform produced an invalid color.
	ErrInvalidVariant = errors.New("variant produced invalid color")

	// ErrMalformedJSON indicates ParseJSON input was not a valid token mapping.
	ErrMalformedJSON = errors.New("malformed JSON token mapping")

	// ErrNoBaseSchema indicates overrides arrived before any base schema
	// was generated, so there is nothing to merge them onto.
	ErrNoBaseSchema = errors.New("no base schema cached")
)
