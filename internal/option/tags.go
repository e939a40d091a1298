package option

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Tag is the parsed form of an `option` struct tag.
// Example: `option:"name=smart-layout,desc='Use the smart layout',maxlen=64"`
type Tag struct {
	Name        string
	Description string
	MaxLength   int
}

// ParseTag parses an option struct tag. It returns nil for an empty tag or "-".
func ParseTag(tag string) (*Tag, error) {
	if tag == "" || tag == "-" {
		return nil, nil
	}

	result := &Tag{}
	for _, part := range splitTagParts(tag) {
		key, value := splitKeyValue(part)
		switch key {
		case "name":
			result.Name = value
		case "desc":
			result.Description = unquoteValue(value)
		case "maxlen":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid maxlen %q in tag %q", value, tag)
			}
			result.MaxLength = n
		default:
			return nil, fmt.Errorf("unknown key %q in tag %q", key, tag)
		}
	}

	if result.Name == "" {
		return nil, fmt.Errorf("tag %q has no name", tag)
	}
	return result, nil
}

// BindStruct registers an option for every field of the struct pointed to by
// ptr that carries an `option` tag. Tagged fields must be bool, int, float64
// or string. Untagged struct fields are walked recursively.
func (rg *Registrar) BindStruct(ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("BindStruct needs a non-nil struct pointer, got %T", ptr)
	}
	return rg.bindStruct(rv.Elem())
}

func (rg *Registrar) bindStruct(sv reflect.Value) error {
	st := sv.Type()
	for i := range st.NumField() {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := sv.Field(i)

		tag, err := ParseTag(field.Tag.Get("option"))
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", st.Name(), field.Name, err)
		}
		if tag == nil {
			if field.Type.Kind() == reflect.Struct && field.Tag.Get("option") != "-" {
				if err := rg.bindStruct(fv); err != nil {
					return err
				}
			}
			continue
		}

		opt, err := fieldOption(tag.Name, fv)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", st.Name(), field.Name, err)
		}
		opt.WithDescription(tag.Description)
		if tag.MaxLength > 0 {
			if opt.kind != StringKind {
				return fmt.Errorf("field %s.%s: maxlen applies to strings", st.Name(), field.Name)
			}
			opt.WithMaxLength(tag.MaxLength)
		}
		if err := rg.Register(opt); err != nil {
			return err
		}
	}
	return nil
}

func fieldOption(name string, fv reflect.Value) (*Option, error) {
	switch p := fv.Addr().Interface().(type) {
	case *bool:
		return BoolField(name, p), nil
	case *int:
		return IntField(name, p), nil
	case *float64:
		return FloatField(name, p), nil
	case *string:
		return StringField(name, p), nil
	default:
		return nil, fmt.Errorf("unsupported field type %s", fv.Type())
	}
}

// splitTagParts splits tag on commas outside quotes.
func splitTagParts(tag string) []string {
	var parts []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)
	prevChar := rune(0)

	for _, r := range tag {
		switch {
		case !inQuote && (r == '\'' || r == '"'):
			inQuote = true
			quoteChar = r
			current.WriteRune(r)
		case inQuote && r == quoteChar && prevChar != '\\':
			inQuote = false
			quoteChar = 0
			current.WriteRune(r)
		case !inQuote && r == ',':
			if current.Len() > 0 {
				parts = append(parts, strings.TrimSpace(current.String()))
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
		prevChar = r
	}

	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}
	return parts
}

func splitKeyValue(part string) (string, string) {
	key, value, _ := strings.Cut(part, "=")
	return key, value
}

func unquoteValue(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first != last || (first != '\'' && first != '"') {
		return value
	}
	return strings.NewReplacer(`\'`, "'", `\"`, `"`, `\\`, `\`).Replace(value[1 : len(value)-1])
}
