package option

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    *Tag
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"skip", "-", nil, false},
		{"name only", "name=smart-layout", &Tag{Name: "smart-layout"}, false},
		{
			"quoted description with comma",
			`name=timeout,desc='Timeout, in milliseconds'`,
			&Tag{Name: "timeout", Description: "Timeout, in milliseconds"},
			false,
		},
		{
			"escaped quote",
			`name=x,desc='it\'s fine',maxlen=8`,
			&Tag{Name: "x", Description: "it's fine", MaxLength: 8},
			false,
		},
		{"missing name", "desc='nothing'", nil, true},
		{"bad maxlen", "name=x,maxlen=-1", nil, true},
		{"unknown key", "name=x,readonly", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTag(tt.tag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTag(%q) error = %v, wantErr %v", tt.tag, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTag(%q) mismatch (-want +got):\n%s", tt.tag, diff)
			}
		})
	}
}

type massOptions struct {
	SkipErrorOnPseudoatoms bool `option:"name=mass-skip-error-on-pseudoatoms,desc='Skip pseudoatoms in mass computations'"`
}

type boundOptions struct {
	Timeout   int     `option:"name=timeout"`
	Factor    float64 `option:"name=layout-horintervalfactor"`
	Model     string  `option:"name=model,maxlen=8"`
	Mass      massOptions
	Ignored   massOptions `option:"-"`
	Untagged  int
	unexposed bool `option:"name=hidden"`
}

func TestBindStruct(t *testing.T) {
	t.Parallel()
	var opts boundOptions
	reg := NewRegistry()
	require.NoError(t, reg.Batch(func(r *Registrar) error {
		return r.BindStruct(&opts)
	}))

	assert.Equal(t, []string{
		"layout-horintervalfactor",
		"mass-skip-error-on-pseudoatoms",
		"model",
		"timeout",
	}, reg.Names())

	require.NoError(t, reg.SetInt("timeout", 300))
	require.NoError(t, reg.SetFloat("layout-horintervalfactor", 0.5))
	require.NoError(t, reg.SetBool("mass-skip-error-on-pseudoatoms", true))
	assert.Equal(t, 300, opts.Timeout)
	assert.Equal(t, 0.5, opts.Factor)
	assert.True(t, opts.Mass.SkipErrorOnPseudoatoms)
	assert.False(t, opts.unexposed)

	info, ok := reg.Lookup("mass-skip-error-on-pseudoatoms")
	require.True(t, ok)
	assert.Equal(t, "Skip pseudoatoms in mass computations", info.Description)

	var invalid *InvalidValueError
	assert.ErrorAs(t, reg.SetString("model", "much-too-long"), &invalid)
	assert.Empty(t, opts.Model)
}

func TestBindStructErrors(t *testing.T) {
	t.Parallel()

	type unsupported struct {
		Level int64 `option:"name=level"`
	}
	type maxlenOnInt struct {
		Level int `option:"name=level,maxlen=3"`
	}

	tests := []struct {
		name string
		ptr  any
	}{
		{"not a pointer", boundOptions{}},
		{"nil pointer", (*boundOptions)(nil)},
		{"pointer to non-struct", new(int)},
		{"unsupported field type", &unsupported{}},
		{"maxlen on int", &maxlenOnInt{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Batch(func(r *Registrar) error {
				return r.BindStruct(tt.ptr)
			})
			assert.Error(t, err)
			assert.Equal(t, 0, reg.Len())
		})
	}
}

func TestBind(t *testing.T) {
	t.Parallel()
	n := 1
	get, set := Bind(&n)
	require.NoError(t, set(5))
	assert.Equal(t, 5, get())
	assert.Equal(t, 5, n)
}
