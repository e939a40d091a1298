package parser

import (
	"errors"
)

// ErrNoParseFunc is returned by BaseParser when no parse function is set.
var ErrNoParseFunc = errors.New("parse function not implemented")

// Parser is the core interface for parsing and validating values of type T.
type Parser[T any] interface {
	// Parse converts a string value to type T.
	Parse(value string) (T, error)

	// Validate checks if a parsed value meets additional constraints.
	Validate(value T) error

	// ParseAndValidate calls Parse followed by Validate.
	ParseAndValidate(value string) (T, error)
}

// BaseParser provides a foundation for implementing parsers.
// It handles the common ParseAndValidate logic.
type BaseParser[T any] struct {
	ParseFunc    func(string) (T, error)
	ValidateFunc func(T) error
}

// Parse implements the Parser interface.
func (p *BaseParser[T]) Parse(value string) (T, error) {
	if p.ParseFunc == nil {
		var zero T
		return zero, ErrNoParseFunc
	}
	return p.ParseFunc(value)
}

// Validate implements the Parser interface.
func (p *BaseParser[T]) Validate(value T) error {
	if p.ValidateFunc == nil {
		return nil
	}
	return p.ValidateFunc(value)
}

// ParseAndValidate implements the Parser interface.
func (p *BaseParser[T]) ParseAndValidate(value string) (T, error) {
	parsed, err := p.Parse(value)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := p.Validate(parsed); err != nil {
		var zero T
		return zero, err
	}

	return parsed, nil
}
