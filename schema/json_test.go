/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/tsevaim/schema"
)

func TestParseJSON_Overrides(t *testing.T) {
	b := newBuilder(t, schema.Options{
		Colors: map[string]string{
			"button.bg": "#3366ff",
			"text.fg":   "#333333",
		},
		Divider: "-",
	})

	base, err := b.Generate(nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	got, err := b.ParseJSON([]byte(`{"button.bg": "#ff0000"}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	if len(got) != len(base) {
		t.Errorf("len(schema) = %d, want %d", len(got), len(base))
	}
	if got["button-bg"] == base["button-bg"] {
		t.Error("override token kept its base value")
	}
	if got["text-fg"] != base["text-fg"] {
		t.Error("untouched token changed")
	}
}

func TestParseJSON_LenientSyntax(t *testing.T) {
	b := newBuilder(t, schema.Options{
		Colors:  map[string]string{"button.bg": "#3366ff"},
		Divider: "-",
	})

	// Comments and trailing commas are tolerated, as in token files.
	input := `{
		// brand override
		"button.bg": "#ff0000",
	}`

	got, err := b.ParseJSON([]byte(input))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if _, ok := got["button-bg"]; !ok {
		t.Errorf("missing key button-bg in %v", got)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated object", `{"button.bg": `},
		{"not an object", `[1, 2, 3]`},
		{"non-string value", `{"button.bg": 42}`},
		{"bare text", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(t, schema.Options{
				Colors: map[string]string{"button.bg": "#3366ff"},
				Logger: &testLogger{},
			})

			got, err := b.ParseJSON([]byte(tt.input))
			if !errors.Is(err, schema.ErrMalformedJSON) {
				t.Errorf("err = %v, want ErrMalformedJSON", err)
			}
			if got != nil {
				t.Error("malformed input must not produce a schema")
			}
		})
	}
}

func TestParseJSON_Strict(t *testing.T) {
	t.Run("no base schema fails the build", func(t *testing.T) {
		b := newBuilder(t, schema.Options{
			Colors: map[string]string{"button.bg": "#3366ff"},
			Strict: true,
		})

		got, err := b.ParseJSON([]byte(`{"button.bg": "#ff0000"}`))
		if !errors.Is(err, schema.ErrNoBaseSchema) {
			t.Errorf("err = %v, want ErrNoBaseSchema", err)
		}
		if got != nil {
			t.Error("strict failure must not return a partial schema")
		}
	})

	t.Run("succeeds once the base schema exists", func(t *testing.T) {
		b := newBuilder(t, schema.Options{
			Colors: map[string]string{"button.bg": "#3366ff"},
			Strict: true,
		})

		if _, err := b.Generate(nil); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, err := b.ParseJSON([]byte(`{"button.bg": "#ff0000"}`)); err != nil {
			t.Errorf("ParseJSON() error = %v, want nil", err)
		}
	})
}

func TestParseJSON_WarnsWithoutBaseSchema(t *testing.T) {
	log := &testLogger{}
	b := newBuilder(t, schema.Options{
		Colors:  map[string]string{"button.bg": "#3366ff"},
		Divider: "-",
		Logger:  log,
	})

	got, err := b.ParseJSON([]byte(`{"button.bg": "#ff0000"}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len(schema) = %d, want 3: %v", len(got), got)
	}

	found := false
	for _, w := range log.warns {
		if strings.Contains(w, "base schema") {
			found = true
		}
	}
	if !found {
		t.Errorf("warns = %v, want a base-schema recommendation", log.warns)
	}
}
