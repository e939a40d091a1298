package parser_test

import (
	"errors"
	"testing"

	"github.com/apstndb/chemopt/internal/parser"
)

func TestBoolParser(t *testing.T) {
	p := parser.NewBoolParser()

	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{"true lowercase", "true", true, false},
		{"TRUE uppercase", "TRUE", true, false},
		{"false", "false", false, false},
		{"with spaces", "  true  ", true, false},
		{"1", "1", true, false},
		{"0", "0", false, false},
		{"invalid", "yes", false, true},
		{"empty", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAndValidate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntParser(t *testing.T) {
	t.Run("basic parsing", func(t *testing.T) {
		p := parser.NewIntParser()

		tests := []struct {
			name    string
			input   string
			want    int
			wantErr bool
		}{
			{"positive", "42", 42, false},
			{"negative", "-42", -42, false},
			{"zero", "0", 0, false},
			{"with spaces", "  123  ", 123, false},
			{"float", "1.5", 0, true},
			{"invalid", "abc", 0, true},
			{"empty", "", 0, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := p.ParseAndValidate(tt.input)
				if (err != nil) != tt.wantErr {
					t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
					return
				}
				if got != tt.want {
					t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
				}
			})
		}
	})
}

func TestFloatParser(t *testing.T) {
	p := parser.NewFloatParser()

	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"decimal", "1.4", 1.4, false},
		{"integer text", "2", 2, false},
		{"exponent", "1e-3", 0.001, false},
		{"negative", "-0.5", -0.5, false},
		{"NaN", "NaN", 0, true},
		{"infinity", "+Inf", 0, true},
		{"invalid", "wide", 0, true},
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

func TestStringParser(t *testing.T) {
	t.Run("as-is", func(t *testing.T) {
		p := parser.NewStringParser()
		got, err := p.ParseAndValidate("  spaced  ")
		if err != nil {
			t.Fatal(err)
		}
		if got != "  spaced  " {
			t.Errorf("ParseAndValidate() = %q, want value unchanged", got)
		}
	})

	t.Run("max length", func(t *testing.T) {
		p := parser.NewStringParser().WithMaxLength(4)
		_, err := p.ParseAndValidate("UTF-8")
		if want := "length 5 exceeds maximum 4"; err == nil || err.Error() != want {
			t.Errorf("ParseAndValidate(UTF-8) error = %v, want %q", err, want)
		}
		if _, err := p.ParseAndValidate("auto"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestBaseParserWithoutParseFunc(t *testing.T) {
	var p parser.BaseParser[int]
	if _, err := p.ParseAndValidate("1"); !errors.Is(err, parser.ErrNoParseFunc) {
		t.Errorf("error = %v, want ErrNoParseFunc", err)
	}
}
