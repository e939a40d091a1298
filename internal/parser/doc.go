// Package parser provides a generic framework for turning the textual form of
// an option value into a typed value and validating it.
//
// # Overview
//
// Option values reach the toolkit as text from several places: command line
// flags, INI config files and YAML option documents. Each option kind owns one
// parser, so the same text is accepted no matter where it came from.
//
// # Key Design Principles
//
//  1. Type Safety Through Generics: every parser is a Parser[T], so the registry
//     never needs runtime conversions between parsed values and handlers.
//
//  2. Separate Validation: parsing and validation are separate steps, so a
//     typed value set without text still passes the same checks.
//
//  3. Case-insensitive Labels: EnumParser matches labels ignoring case and keeps
//     them in declaration order, so error messages list the allowed labels in a
//     stable order.
//
// # Usage Examples
//
//	// A string parser that accepts at most 16 bytes
//	p := NewStringParser().WithMaxLength(16)
//
//	// A label parser for orientation values
//	orientation := NewEnumParser([]string{"unspecified", "horizontal", "vertical"},
//	    func(s string) string { return s })
package parser
