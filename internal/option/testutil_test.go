package option

import (
	"strings"
)

type orientation int

const (
	unspecified orientation = iota
	horizontal
	vertical
)

func (o orientation) String() string {
	switch o {
	case horizontal:
		return "horizontal"
	case vertical:
		return "vertical"
	default:
		return "unspecified"
	}
}

type uniqueness struct {
	Find  bool
	Edges bool
}

var uniquenessLabels = []CompositeLabel[uniqueness]{
	{
		Label: "atoms",
		Apply: func(uniqueness) uniqueness { return uniqueness{Find: true, Edges: false} },
		Match: func(s uniqueness) bool { return s.Find && !s.Edges },
	},
	{
		Label: "bonds",
		Apply: func(uniqueness) uniqueness { return uniqueness{Find: true, Edges: true} },
		Match: func(s uniqueness) bool { return s.Find && s.Edges },
	},
	{
		Label: "none",
		Apply: func(s uniqueness) uniqueness { s.Find = false; return s },
		Match: func(s uniqueness) bool { return !s.Find },
	},
}

type testConfig struct {
	TreatXAsPseudoatom bool
	MaxEmbeddings      int
	IntervalFactor     float64
	Encoding           string
	Orientation        orientation
	Embedding          uniqueness
	Resets             int
}

func newTestRegistry(cfg *testConfig, opts ...RegistryOption) (*Registry, error) {
	reg := NewRegistry(opts...)
	err := reg.Batch(func(r *Registrar) error {
		for _, opt := range []*Option{
			BoolField("treat-x-as-pseudoatom", &cfg.TreatXAsPseudoatom),
			IntField("max-embeddings", &cfg.MaxEmbeddings),
			FloatField("layout-horintervalfactor", &cfg.IntervalFactor),
			NewString("filename-encoding", GetValue(&cfg.Encoding), func(s string) error {
				cfg.Encoding = strings.ToUpper(s)
				return nil
			}).WithMaxLength(16),
			NewEnum("layout-orientation",
				[]orientation{unspecified, horizontal, vertical}, orientation.String,
				GetValue(&cfg.Orientation), SetValue(&cfg.Orientation)),
			NewComposite("embedding-uniqueness",
				GetValue(&cfg.Embedding), SetValue(&cfg.Embedding), uniquenessLabels...),
			NewAction("reset-basic-options", func() error {
				*cfg = testConfig{Resets: cfg.Resets + 1}
				return nil
			}),
		} {
			if err := r.Register(opt); err != nil {
				return err
			}
		}
		return nil
	})
	return reg, err
}
