package query

import (
	"errors"
	"testing"

	"github.com/atriumhq/docsearch/internal/domain"
)

func TestValidate_Trims(t *testing.T) {
	got, err := Validate("  solar inverter\t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "solar inverter" {
		t.Errorf("expected trimmed query, got %q", got)
	}
}

func TestValidate_PreservesCase(t *testing.T) {
	got, err := Validate("Solar INVERTER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Solar INVERTER" {
		t.Errorf("no case folding expected, got %q", got)
	}
}

func TestValidate_RejectsNonString(t *testing.T) {
	cases := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"int", 42},
		{"float", 1.5},
		{"bool", true},
		{"slice", []string{"q"}},
		{"map", map[string]any{"q": "v"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.raw)
			if !errors.Is(err, ErrNotString) {
				t.Errorf("expected ErrNotString, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("expected wrap of ErrInvalidQuery, got %v", err)
			}
		})
	}
}

func TestValidate_RejectsEmpty(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs_newlines", "\t\n \r"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.raw)
			if !errors.Is(err, ErrEmpty) {
				t.Errorf("expected ErrEmpty, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("expected wrap of ErrInvalidQuery, got %v", err)
			}
		})
	}
}
