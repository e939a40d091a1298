package option

import (
	"strconv"
)

// Value is an option value tagged with its kind.
// The zero Value is a bool false.
type Value struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
}

// BoolValue returns a bool Value.
func BoolValue(v bool) Value { return Value{kind: BoolKind, b: v} }

// IntValue returns an int Value.
func IntValue(v int) Value { return Value{kind: IntKind, i: v} }

// FloatValue returns a float Value.
func FloatValue(v float64) Value { return Value{kind: FloatKind, f: v} }

// StringValue returns a string Value.
func StringValue(v string) Value { return Value{kind: StringKind, s: v} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the payload of a bool Value and false for any other kind.
func (v Value) Bool() bool { return v.b }

// Int returns the payload of an int Value and 0 for any other kind.
func (v Value) Int() int { return v.i }

// Float returns the payload of a float Value and 0 for any other kind.
func (v Value) Float() float64 { return v.f }

// Str returns the payload of a string Value and "" for any other kind.
func (v Value) Str() string { return v.s }

// Any returns the payload as an untyped value.
func (v Value) Any() any {
	switch v.kind {
	case IntKind:
		return v.i
	case FloatKind:
		return v.f
	case StringKind:
		return v.s
	default:
		return v.b
	}
}

// String formats the payload the way SetFromString accepts it back.
func (v Value) String() string {
	switch v.kind {
	case IntKind:
		return FormatInt(v.i)
	case FloatKind:
		return FormatFloat(v.f)
	case StringKind:
		return v.s
	default:
		return FormatBool(v.b)
	}
}

// FormatBool formats a boolean value as lowercase true/false.
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}

// FormatInt formats an integer value.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatFloat formats a float with the fewest digits that parse back to v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
