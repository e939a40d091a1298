// Package optfile reads and writes option documents: YAML mappings from
// option name to value, applied to a registry in document order.
package optfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/apstndb/chemopt/internal/option"
)

// Entry is one name/value pair of a document.
// Value holds the decoded YAML scalar: nil, bool, an integer type, float64 or string.
type Entry struct {
	Name  string
	Value any
}

// Document is an ordered list of option assignments.
type Document struct {
	Entries []Entry
}

// EntryError reports the entry that failed to apply.
type EntryError struct {
	Index int
	Name  string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (%s): %v", e.Index+1, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Load reads the document at path from fs. Files ending in .hcl are parsed
// as HCL, everything else as YAML.
func Load(fs afero.Fs, path string) (*Document, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read option file: %w", err)
	}
	var doc *Document
	if filepath.Ext(path) == ".hcl" {
		doc, err = ParseHCL(b, path)
	} else {
		doc, err = Parse(b)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. The top level must be a mapping with string keys
// and scalar values.
func Parse(b []byte) (*Document, error) {
	var m yaml.MapSlice
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("invalid option document: %w", err)
	}

	doc := &Document{Entries: make([]Entry, 0, len(m))}
	for _, item := range m {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("option name must be a string, got %T %v", item.Key, item.Key)
		}
		switch item.Value.(type) {
		case []any, map[string]any, map[any]any, yaml.MapSlice:
			return nil, fmt.Errorf("option %s: value must be a scalar", name)
		}
		doc.Entries = append(doc.Entries, Entry{Name: name, Value: item.Value})
	}
	return doc, nil
}

// Apply sets every entry of doc in order and stops at the first failure.
// Entries applied before the failure stay applied.
func Apply(reg *option.Registry, doc *Document) error {
	for i, e := range doc.Entries {
		if err := applyEntry(reg, e); err != nil {
			return &EntryError{Index: i, Name: e.Name, Err: err}
		}
	}
	return nil
}

func applyEntry(reg *option.Registry, e Entry) error {
	info, ok := reg.Lookup(e.Name)
	if !ok {
		return &option.UnknownOptionError{Name: e.Name}
	}
	if info.Kind == option.ActionKind {
		if e.Value != nil && e.Value != "" {
			return &option.InvalidValueError{Name: e.Name, Value: fmt.Sprint(e.Value), Err: errors.New("actions take no value")}
		}
		return reg.InvokeAction(e.Name)
	}

	v, err := toValue(info.Kind, e.Value)
	if err != nil {
		return err
	}
	return reg.Set(e.Name, v)
}

// toValue converts a YAML scalar to a Value of kind. Integers widen to
// floats, and numbers are accepted as text for string options so that
// unquoted labels like 2000 work. Anything else keeps its own kind and is
// rejected by the registry as a kind mismatch.
func toValue(kind option.Kind, raw any) (option.Value, error) {
	switch v := raw.(type) {
	case nil:
		return option.Value{}, errors.New("missing value")
	case bool:
		return option.BoolValue(v), nil
	case string:
		return option.StringValue(v), nil
	case float64:
		if kind == option.StringKind {
			return option.StringValue(option.FormatFloat(v)), nil
		}
		return option.FloatValue(v), nil
	}

	i, err := toInt(raw)
	if err != nil {
		return option.Value{}, err
	}
	switch kind {
	case option.FloatKind:
		return option.FloatValue(float64(i)), nil
	case option.StringKind:
		return option.StringValue(option.FormatInt(i)), nil
	default:
		return option.IntValue(i), nil
	}
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, fmt.Errorf("integer %d out of range", v)
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, fmt.Errorf("integer %d out of range", v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
}

// Dump encodes the current value of every non-action option in name order.
func Dump(reg *option.Registry) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, reg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the current value of every non-action option to w.
// Applying the output restores what the options read back. State a getter
// does not expose, such as a field a composite label leaves untouched, is
// not written.
func Write(w io.Writer, reg *option.Registry) error {
	var m yaml.MapSlice
	for _, info := range reg.Infos() {
		if info.Kind == option.ActionKind {
			continue
		}
		v, err := reg.Get(info.Name)
		if err != nil {
			return err
		}
		m = append(m, yaml.MapItem{Key: info.Name, Value: v.Any()})
	}

	if err := yaml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	return nil
}

// Save writes the current options to path on fs.
func Save(fs afero.Fs, path string, reg *option.Registry) error {
	b, err := Dump(reg)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, b, 0o644)
}
