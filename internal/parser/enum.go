package parser

import (
	"fmt"
	"strings"
)

// UnknownLabelError is returned by EnumParser when the input matches no label.
type UnknownLabelError struct {
	Value   string
	Allowed []string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("invalid value %q, must be one of: %s", e.Value, strings.Join(e.Allowed, ", "))
}

// EnumParser parses labels into enum values.
// Labels keep their declaration order and are matched case-insensitively
// against the whole input.
type EnumParser[T comparable] struct {
	BaseParser[T]
	labels []string
	values []T
	index  map[string]int
}

// NewEnumParser creates an enum parser accepting label(v) for each v in values.
// It panics if two labels are equal ignoring case.
func NewEnumParser[T comparable](values []T, label func(T) string) *EnumParser[T] {
	p := &EnumParser[T]{
		labels: make([]string, 0, len(values)),
		values: make([]T, 0, len(values)),
	}
	for _, v := range values {
		p.labels = append(p.labels, label(v))
		p.values = append(p.values, v)
	}
	p.buildIndex()

	p.BaseParser = BaseParser[T]{
		ParseFunc: p.parseEnum,
	}
	return p
}

func (p *EnumParser[T]) buildIndex() {
	p.index = make(map[string]int, len(p.labels))
	for i, l := range p.labels {
		k := strings.ToLower(l)
		if _, dup := p.index[k]; dup {
			panic(fmt.Sprintf("duplicate enum label %q", l))
		}
		p.index[k] = i
	}
}

func (p *EnumParser[T]) parseEnum(value string) (T, error) {
	if i, ok := p.index[strings.ToLower(value)]; ok {
		return p.values[i], nil
	}

	var zero T
	return zero, &UnknownLabelError{Value: value, Allowed: p.Labels()}
}

// Labels returns the accepted labels in declaration order.
func (p *EnumParser[T]) Labels() []string {
	return append([]string(nil), p.labels...)
}

// Label returns the canonical label of v, the first label declared for it.
func (p *EnumParser[T]) Label(v T) (string, bool) {
	for i, candidate := range p.values {
		if candidate == v {
			return p.labels[i], true
		}
	}
	return "", false
}
