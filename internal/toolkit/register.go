package toolkit

import (
	"errors"
	"fmt"

	"github.com/apstndb/chemopt/enums"
	"github.com/apstndb/chemopt/internal/option"
)

// ResetBasicOptions is the name of the action that runs Options.ResetBasic.
const ResetBasicOptions = "reset-basic-options"

// Register binds every basic option to opts in one registration burst.
func Register(reg *option.Registry, opts *Options) error {
	return reg.Batch(func(r *option.Registrar) error {
		if err := r.BindStruct(opts); err != nil {
			return fmt.Errorf("failed to bind options: %w", err)
		}
		return errors.Join(
			r.Register(enumVar("molfile-saving-mode", &opts.Molfile.SavingMode, enums.MolfileSavingModeValues()).
				WithDescription("Molfile version to write: 2000, 3000 or auto")),
			r.Register(enumVar("filename-encoding", &opts.FilenameEncoding, enums.FilenameEncodingValues()).
				WithDescription("Encoding of file names passed to the toolkit")),
			r.Register(enumVar("layout-orientation", &opts.Layout.Orientation, enums.LayoutOrientationValues()).
				WithDescription("Preferred orientation of 2D layouts")),
			r.Register(enumVar("aromaticity-model", &opts.Aromaticity.Method, enums.AromaticityMethodValues()).
				WithDescription("Aromaticity model used by aromatization")),
			r.Register(enumVar("pKa-model", &opts.Ionize.Model, enums.PkaModelValues()).
				WithDescription("Model used to estimate pKa values")),
			r.Register(embeddingUniqueness(&opts.Embedding).
				WithDescription("Which embeddings count as distinct: atoms, bonds or none")),
			r.Register(option.NewAction(ResetBasicOptions, func() error {
				opts.ResetBasic()
				return nil
			}).WithDescription("Restore the defaults of all basic options")),
		)
	})
}

// NewRegistry returns a registry holding every basic option bound to opts.
func NewRegistry(opts *Options, regOpts ...option.RegistryOption) (*option.Registry, error) {
	reg := option.NewRegistry(regOpts...)
	if err := Register(reg, opts); err != nil {
		return nil, err
	}
	return reg, nil
}

type enumer interface {
	comparable
	String() string
}

func enumVar[T enumer](name string, p *T, values []T) *option.Option {
	return option.NewEnum(name, values, func(v T) string { return v.String() },
		option.GetValue(p), option.SetValue(p))
}

func embeddingUniqueness(p *EmbeddingOptions) *option.Option {
	return option.NewComposite("embedding-uniqueness", option.GetValue(p), option.SetValue(p),
		option.CompositeLabel[EmbeddingOptions]{
			Label: "atoms",
			Apply: func(e EmbeddingOptions) EmbeddingOptions {
				e.FindUnique, e.EdgesUniqueness = true, false
				return e
			},
			Match: func(e EmbeddingOptions) bool { return e.FindUnique && !e.EdgesUniqueness },
		},
		option.CompositeLabel[EmbeddingOptions]{
			Label: "bonds",
			Apply: func(e EmbeddingOptions) EmbeddingOptions {
				e.FindUnique, e.EdgesUniqueness = true, true
				return e
			},
			Match: func(e EmbeddingOptions) bool { return e.FindUnique && e.EdgesUniqueness },
		},
		option.CompositeLabel[EmbeddingOptions]{
			// Edge uniqueness is left as is.
			Label: "none",
			Apply: func(e EmbeddingOptions) EmbeddingOptions {
				e.FindUnique = false
				return e
			},
			Match: func(e EmbeddingOptions) bool { return !e.FindUnique },
		},
	)
}
