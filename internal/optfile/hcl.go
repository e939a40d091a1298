package optfile

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// ParseHCL decodes a document written as HCL attributes:
//
//	layout-orientation = "horizontal"
//	max-embeddings     = 5000
//	reset-basic-options = null
//
// Entries keep their source order. Expressions are evaluated without
// variables or functions.
func ParseHCL(b []byte, filename string) (*Document, error) {
	file, diags := hclparse.NewParser().ParseHCL(b, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid option document: %w", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid option document: %w", diags)
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	slices.SortFunc(sorted, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	doc := &Document{Entries: make([]Entry, 0, len(sorted))}
	for _, attr := range sorted {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("option %s: %w", attr.Name, diags)
		}
		native, err := ctyToNative(v)
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", attr.Name, err)
		}
		doc.Entries = append(doc.Entries, Entry{Name: attr.Name, Value: native})
	}
	return doc, nil
}

// ctyToNative converts a scalar cty.Value to the Go types YAML decoding
// produces, so both formats share Apply. Whole numbers become int64.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	switch ty := v.Type(); ty {
	case cty.String:
		return v.AsString(), nil
	case cty.Bool:
		return v.True(), nil
	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	default:
		return nil, fmt.Errorf("value must be a scalar, got %s", ty.FriendlyName())
	}
}
