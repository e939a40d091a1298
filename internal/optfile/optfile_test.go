package optfile

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/chemopt/enums"
	"github.com/apstndb/chemopt/internal/option"
	"github.com/apstndb/chemopt/internal/toolkit"
)

func newRegistry(t *testing.T) (*toolkit.Options, *option.Registry) {
	t.Helper()
	opts := toolkit.NewOptions()
	reg, err := toolkit.NewRegistry(opts)
	require.NoError(t, err)
	return opts, reg
}

func TestLoadAndApply(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "options.yaml", []byte(heredoc.Doc(`
		# applied top to bottom
		max-embeddings: 5
		reset-basic-options:
		treat-x-as-pseudoatom: true
		molfile-saving-mode: 2000
		layout-horintervalfactor: 2
		layout-orientation: Vertical
		embedding-uniqueness: bonds
		pKa-model-level: -1
	`)), 0o644))

	doc, err := Load(fs, "options.yaml")
	require.NoError(t, err)
	require.Len(t, doc.Entries, 8)
	assert.Equal(t, "max-embeddings", doc.Entries[0].Name)
	assert.Nil(t, doc.Entries[1].Value)

	opts, reg := newRegistry(t)
	require.NoError(t, Apply(reg, doc))

	assert.Equal(t, 10000, opts.MaxEmbeddings, "reset after max-embeddings restores the default")
	assert.True(t, opts.TreatXAsPseudoatom)
	assert.Equal(t, enums.MolfileSavingMode2000, opts.Molfile.SavingMode)
	assert.Equal(t, 2.0, opts.Layout.HorIntervalFactor)
	assert.Equal(t, enums.LayoutOrientationVertical, opts.Layout.Orientation)
	assert.Equal(t, toolkit.EmbeddingOptions{FindUnique: true, EdgesUniqueness: true}, opts.Embedding)
	assert.Equal(t, -1, opts.Ionize.Level)
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		target any
		index  int
	}{
		{
			name:   "unknown option",
			input:  "timeout: 30\nno-such-option: 1\n",
			target: new(*option.UnknownOptionError),
			index:  1,
		},
		{
			name:   "kind mismatch",
			input:  "timeout: 30\nmax-embeddings: ten\n",
			target: new(*option.KindMismatchError),
			index:  1,
		},
		{
			name:   "invalid label",
			input:  "timeout: 30\nlayout-orientation: diagonal\nsmart-layout: true\n",
			target: new(*option.InvalidValueError),
			index:  1,
		},
		{
			name:   "value on action",
			input:  "timeout: 30\nreset-basic-options: now\n",
			target: new(*option.InvalidValueError),
			index:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			opts, reg := newRegistry(t)
			err = Apply(reg, doc)

			var entryErr *EntryError
			require.ErrorAs(t, err, &entryErr)
			assert.Equal(t, tt.index, entryErr.Index)
			assert.ErrorAs(t, err, tt.target)
			assert.Equal(t, 30, opts.Timeout, "entries before the failure stay applied")
			assert.False(t, opts.Layout.Smart)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	for _, input := range []string{
		"timeout: [1, 2]\n",
		"timeout:\n  value: 1\n",
		"- timeout\n",
		"1: true\n",
	} {
		_, err := Parse([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(afero.NewMemMapFs(), "missing.yaml")
	assert.Error(t, err)
}

func TestDumpRoundTrip(t *testing.T) {
	t.Parallel()
	src, srcReg := newRegistry(t)
	require.NoError(t, srcReg.SetString("molfile-saving-mode", "3000"))
	require.NoError(t, srcReg.SetString("filename-encoding", "utf-8"))
	require.NoError(t, srcReg.SetString("embedding-uniqueness", "bonds"))
	require.NoError(t, srcReg.SetFloat("layout-horintervalfactor", 0.75))
	require.NoError(t, srcReg.SetInt("pKa-model-min-level", 2))
	require.NoError(t, srcReg.SetBool("standardize-clear-isotopes", true))
	require.NoError(t, srcReg.SetBool("deco-ignore-errors", false))

	fs := afero.NewMemMapFs()
	require.NoError(t, Save(fs, "dump.yaml", srcReg))

	doc, err := Load(fs, "dump.yaml")
	require.NoError(t, err)
	assert.Len(t, doc.Entries, srcReg.Len()-1, "actions are not dumped")

	dst, dstReg := newRegistry(t)
	require.NoError(t, Apply(dstReg, doc))

	if diff := cmp.Diff(src, dst); diff != "" {
		t.Errorf("options after round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpRoundTripReadableValuesOnly(t *testing.T) {
	t.Parallel()
	src, srcReg := newRegistry(t)
	require.NoError(t, srcReg.SetString("embedding-uniqueness", "bonds"))
	require.NoError(t, srcReg.SetString("embedding-uniqueness", "none"))
	require.True(t, src.Embedding.EdgesUniqueness, "none keeps the edge flag")

	out, err := Dump(srcReg)
	require.NoError(t, err)
	doc, err := Parse(out)
	require.NoError(t, err)

	dst, dstReg := newRegistry(t)
	require.NoError(t, Apply(dstReg, doc))

	got, err := Dump(dstReg)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(got))
	v, err := dstReg.GetString("embedding-uniqueness")
	require.NoError(t, err)
	assert.Equal(t, "none", v)
	assert.False(t, dst.Embedding.FindUnique)
	assert.False(t, dst.Embedding.EdgesUniqueness, "the edge flag is not part of the dump")
}

func TestDumpOrder(t *testing.T) {
	t.Parallel()
	var a, b int
	reg := option.NewRegistry()
	require.NoError(t, reg.Register(option.IntField("zeta", &a)))
	require.NoError(t, reg.Register(option.IntField("alpha", &b)))
	require.NoError(t, reg.RegisterAction("reset", func() error { return nil }))

	out, err := Dump(reg)
	require.NoError(t, err)
	assert.Equal(t, "alpha: 0\nzeta: 0\n", string(out))
}
