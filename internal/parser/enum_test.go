package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/apstndb/chemopt/internal/parser"
)

type orientation int

func (o orientation) label() string {
	return [...]string{"unspecified", "horizontal", "vertical"}[o]
}

func TestEnumParser(t *testing.T) {
	p := parser.NewEnumParser([]orientation{0, 1, 2}, orientation.label)

	tests := []struct {
		name    string
		input   string
		want    orientation
		wantErr bool
	}{
		{"exact", "horizontal", 1, false},
		{"capitalized", "Horizontal", 1, false},
		{"upper", "VERTICAL", 2, false},
		{"surrounding spaces", " unspecified ", 0, true},
		{"trailing tab", "vertical\t", 0, true},
		{"unknown", "diagonal", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAndValidate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumParserUnknownLabelError(t *testing.T) {
	p := parser.NewEnumParser([]string{"basic", "generic"}, strings.ToLower)

	_, err := p.ParseAndValidate("fancy")

	var labelErr *parser.UnknownLabelError
	if !errors.As(err, &labelErr) {
		t.Fatalf("error = %T, want *UnknownLabelError", err)
	}
	if diff := cmp.Diff([]string{"basic", "generic"}, labelErr.Allowed); diff != "" {
		t.Errorf("Allowed mismatch (-want +got):\n%s", diff)
	}
	if want := `invalid value "fancy", must be one of: basic, generic`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestEnumParserLabel(t *testing.T) {
	p := parser.NewEnumParser([]orientation{0, 1, 2}, orientation.label)

	if got, ok := p.Label(2); !ok || got != "vertical" {
		t.Errorf("Label(2) = %q, %v", got, ok)
	}
	if _, ok := p.Label(7); ok {
		t.Error("Label(7) should report a missing label")
	}
	if diff := cmp.Diff([]string{"unspecified", "horizontal", "vertical"}, p.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumParserDuplicateLabelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for labels differing only in case")
		}
	}()
	parser.NewEnumParser([]string{"auto", "AUTO"}, func(s string) string { return s })
}
