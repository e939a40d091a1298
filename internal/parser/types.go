package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BoolParser parses boolean values.
// It uses strconv.ParseBool which accepts:
// "1", "t", "T", "true", "TRUE", "True",
// "0", "f", "F", "false", "FALSE", "False".
type BoolParser struct {
	BaseParser[bool]
}

// NewBoolParser creates a new boolean parser.
func NewBoolParser() *BoolParser {
	return &BoolParser{
		BaseParser: BaseParser[bool]{
			ParseFunc: func(value string) (bool, error) {
				return strconv.ParseBool(strings.TrimSpace(value))
			},
		},
	}
}

// IntParser parses integer values.
type IntParser struct {
	BaseParser[int]
}

// NewIntParser creates a new integer parser.
func NewIntParser() *IntParser {
	return &IntParser{
		BaseParser: BaseParser[int]{
			ParseFunc: func(value string) (int, error) {
				i, err := strconv.ParseInt(strings.TrimSpace(value), 10, strconv.IntSize)
				return int(i), err
			},
		},
	}
}

// FloatParser parses floating point values.
// NaN and infinities are rejected.
type FloatParser struct {
	BaseParser[float64]
}

// NewFloatParser creates a new float parser.
func NewFloatParser() *FloatParser {
	p := &FloatParser{
		BaseParser: BaseParser[float64]{
			ParseFunc: func(value string) (float64, error) {
				return strconv.ParseFloat(strings.TrimSpace(value), 64)
			},
		},
	}
	p.ValidateFunc = p.validate
	return p
}

func (p *FloatParser) validate(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("value %v is not a finite number", value)
	}
	return nil
}

// StringParser parses string values with an optional length limit.
type StringParser struct {
	BaseParser[string]
	maxLen int
}

// NewStringParser creates a new string parser.
// The value is returned as-is.
func NewStringParser() *StringParser {
	return &StringParser{
		BaseParser: BaseParser[string]{
			ParseFunc: func(value string) (string, error) {
				return value, nil
			},
		},
	}
}

// WithMaxLength limits the length of the value in bytes.
func (p *StringParser) WithMaxLength(max int) *StringParser {
	p.maxLen = max
	p.ValidateFunc = p.validateLength
	return p
}

func (p *StringParser) validateLength(value string) error {
	if p.maxLen > 0 && len(value) > p.maxLen {
		return fmt.Errorf("length %d exceeds maximum %d", len(value), p.maxLen)
	}
	return nil
}
