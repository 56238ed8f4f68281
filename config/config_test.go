/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsevaim/config"
	"bennypowers.dev/tsevaim/dye"
	"bennypowers.dev/tsevaim/schema"
)

func TestVariantSpec_Variant(t *testing.T) {
	base := dye.Parse("#3366ff")

	tests := []struct {
		op string
	}{
		{"lighten"},
		{"darken"},
		{"saturate"},
		{"desaturate"},
		{"alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			spec := config.VariantSpec{Op: tt.op, Amount: 0.3}
			v, err := spec.Variant()
			require.NoError(t, err)
			assert.True(t, v(base).Valid())
		})
	}

	t.Run("unknown op", func(t *testing.T) {
		_, err := config.VariantSpec{Op: "invert"}.Variant()
		assert.Error(t, err)
	})

	t.Run("lighten raises lightness", func(t *testing.T) {
		v, err := config.VariantSpec{Op: "lighten", Amount: 0.2}.Variant()
		require.NoError(t, err)
		assert.NotEqual(t, base.Hex(), v(base).Hex())
	})

	t.Run("alpha sets the channel", func(t *testing.T) {
		v, err := config.VariantSpec{Op: "alpha", Amount: 0.5}.Variant()
		require.NoError(t, err)
		assert.InDelta(t, 0.5, v(base).Alpha(), 0.001)
	})
}

func TestConfig_SchemaVariants(t *testing.T) {
	t.Run("empty keeps builder defaults", func(t *testing.T) {
		variants, err := config.Default().SchemaVariants()
		require.NoError(t, err)
		assert.Nil(t, variants)
	})

	t.Run("named specs convert", func(t *testing.T) {
		cfg := &config.Config{
			Variants: map[string]config.VariantSpec{
				"hover":  {Op: "lighten", Amount: 0.08},
				"active": {Op: "darken", Amount: 0.08},
			},
		}
		variants, err := cfg.SchemaVariants()
		require.NoError(t, err)
		assert.Len(t, variants, 2)
		assert.Contains(t, variants, "hover")
		assert.Contains(t, variants, "active")
	})

	t.Run("bad op names the variant", func(t *testing.T) {
		cfg := &config.Config{
			Variants: map[string]config.VariantSpec{
				"hover": {Op: "sparkle", Amount: 0.1},
			},
		}
		_, err := cfg.SchemaVariants()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hover")
	})
}

func TestConfig_BuilderOptions(t *testing.T) {
	cfg := &config.Config{
		Prefix:  "--",
		Divider: "-",
		Scope:   []string{"bg", "fg"},
		Strict:  true,
		Variants: map[string]config.VariantSpec{
			"hover": {Op: "lighten", Amount: 0.08},
		},
	}

	colors := map[string]string{"button.bg": "#3366ff"}
	opts, err := cfg.BuilderOptions(colors)
	require.NoError(t, err)

	assert.Equal(t, "--", opts.Prefix)
	assert.Equal(t, "-", opts.Divider)
	assert.True(t, opts.Strict)
	assert.Len(t, opts.Variants, 1)

	b, err := schema.New(opts)
	require.NoError(t, err)

	got, err := b.Generate(nil)
	require.NoError(t, err)
	assert.Contains(t, got, "--button-bg")
	assert.Contains(t, got, "--button-bg-hover")
	assert.NotContains(t, got, "--button-bg-lighter")
}

func TestConfig_PalettePaths(t *testing.T) {
	cfg := &config.Config{
		Palettes: []config.FileSpec{
			{Path: "palettes/base.yaml"},
			{Path: "palettes/button.json", Namespace: "button"},
		},
	}
	assert.Equal(t, []string{"palettes/base.yaml", "palettes/button.json"}, cfg.PalettePaths())
}
