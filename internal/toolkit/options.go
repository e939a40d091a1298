// Package toolkit holds the configuration context of the chemistry toolkit
// and binds every basic option name to it.
package toolkit

import (
	"github.com/apstndb/chemopt/enums"
)

// Options is the configuration context read and written by option handlers.
// It is not safe for concurrent mutation.
type Options struct {
	Stereochemistry StereochemistryOptions

	IgnoreNoncriticalQueryFeatures bool `option:"name=ignore-noncritical-query-features,desc='Ignore query features that do not affect matching'"`
	TreatXAsPseudoatom             bool `option:"name=treat-x-as-pseudoatom,desc='Load X atoms as pseudoatoms instead of query atoms'"`
	Skip3DChirality                bool `option:"name=skip-3d-chirality,desc='Do not derive chirality from 3D coordinates'"`

	DeconvolutionAromatization bool `option:"name=deconvolution-aromatization,desc='Aromatize scaffolds and molecules before decomposition'"`
	DecoSaveAPBondOrders       bool `option:"name=deco-save-ap-bond-orders,desc='Keep attachment point bond orders in decomposition results'"`
	DecoIgnoreErrors           bool `option:"name=deco-ignore-errors,desc='Continue decomposition after errors'"`

	Molfile MolfileOptions

	SmilesSavingWriteName bool `option:"name=smiles-saving-write-name,desc='Append the molecule name to SMILES output'"`

	FilenameEncoding enums.FilenameEncoding

	Fingerprint FingerprintOptions
	Layout      LayoutOptions
	Embedding   EmbeddingOptions

	MaxEmbeddings             int  `option:"name=max-embeddings,desc='Maximum number of embeddings to enumerate'"`
	AAMTimeout                int  `option:"name=aam-timeout,desc='Atom-to-atom mapping timeout in milliseconds, 0 for none'"`
	Timeout                   int  `option:"name=timeout,desc='Cancellation timeout in milliseconds, 0 for none'"`
	SerializePreserveOrdering bool `option:"name=serialize-preserve-ordering,desc='Keep atom and bond order when serializing'"`

	Aromaticity           AromaticityOptions
	UniqueDearomatization bool `option:"name=unique-dearomatization,desc='Fail when dearomatization is ambiguous'"`

	Standardize  StandardizeOptions
	Ionize       IonizeOptions
	Mass         MassOptions
	GrossFormula GrossFormulaOptions
}

// StereochemistryOptions controls stereocenter detection.
type StereochemistryOptions struct {
	IgnoreErrors            bool `option:"name=ignore-stereochemistry-errors,desc='Drop invalid stereocenters instead of failing'"`
	BidirectionalMode       bool `option:"name=stereochemistry-bidirectional-mode,desc='Read wedge bonds from both ends'"`
	DetectHaworthProjection bool `option:"name=stereochemistry-detect-haworth-projection,desc='Recognize Haworth projections'"`
}

// MolfileOptions controls molfile output.
type MolfileOptions struct {
	SavingMode    enums.MolfileSavingMode
	NoChiral      bool `option:"name=molfile-saving-no-chiral,desc='Do not write the chiral flag'"`
	SkipDate      bool `option:"name=molfile-saving-skip-date,desc='Write a zero date in the header line'"`
	AddStereoDesc bool `option:"name=molfile-saving-add-stereo-desc,desc='Write CIP stereo descriptors'"`
	AddImplicitH  bool `option:"name=molfile-saving-add-implicit-h,desc='Write implicit hydrogen counts'"`
}

// FingerprintOptions sizes the fingerprint parts in 64-bit words.
type FingerprintOptions struct {
	OrdQwords int  `option:"name=fp-ord-qwords,desc='Size of the ordinary part'"`
	SimQwords int  `option:"name=fp-sim-qwords,desc='Size of the similarity part'"`
	AnyQwords int  `option:"name=fp-any-qwords,desc='Size of the any-bond part'"`
	TauQwords int  `option:"name=fp-tau-qwords,desc='Size of the tautomer part'"`
	Ext       bool `option:"name=fp-ext-enabled,desc='Include the extra part'"`
}

// LayoutOptions controls 2D layout.
type LayoutOptions struct {
	Smart             bool `option:"name=smart-layout,desc='Use template-based layout'"`
	Orientation       enums.LayoutOrientation
	MaxIterations     int     `option:"name=layout-max-iterations,desc='Iteration limit, 0 for automatic'"`
	HorIntervalFactor float64 `option:"name=layout-horintervalfactor,desc='Horizontal spacing factor for reaction layout'"`
}

// EmbeddingOptions controls substructure embedding enumeration.
// It is exposed through the embedding-uniqueness option.
type EmbeddingOptions struct {
	FindUnique      bool
	EdgesUniqueness bool
}

// AromaticityOptions controls aromatization and dearomatization.
type AromaticityOptions struct {
	Method            enums.AromaticityMethod
	DearomatizeVerify bool `option:"name=dearomatize-verification,desc='Verify dearomatization results'"`
}

// StandardizeOptions selects the standardization steps to run.
type StandardizeOptions struct {
	Stereo                       bool `option:"name=standardize-stereo"`
	Charges                      bool `option:"name=standardize-charges"`
	CenterMolecule               bool `option:"name=standardize-center-molecule"`
	RemoveSingleAtoms            bool `option:"name=standardize-remove-single-atoms"`
	KeepSmallest                 bool `option:"name=standardize-keep-smallest"`
	KeepLargest                  bool `option:"name=standardize-keep-largest"`
	RemoveLargest                bool `option:"name=standardize-remove-largest"`
	MakeNonHToCAtoms             bool `option:"name=standardize-make-non-h-to-c-atoms"`
	MakeNonHToAAtoms             bool `option:"name=standardize-make-non-h-to-a-atoms"`
	MakeNonHCToQAtoms            bool `option:"name=standardize-make-non-h-c-to-q-atoms"`
	MakeAllBondsSingle           bool `option:"name=standardize-make-all-bonds-single"`
	ClearCoordinates             bool `option:"name=standardize-clear-coordinates"`
	StraightenTripleBonds        bool `option:"name=standardize-straighten-triple-bonds"`
	StraightenAllens             bool `option:"name=standardize-straighten-allens"`
	ClearMolecule                bool `option:"name=standardize-clear-molecule"`
	ClearStereo                  bool `option:"name=standardize-clear-stereo"`
	ClearEnhancedStereo          bool `option:"name=standardize-clear-enhanced-stereo"`
	ClearUnknownStereo           bool `option:"name=standardize-clear-unknown-stereo"`
	ClearUnknownAtomStereo       bool `option:"name=standardize-clear-unknown-atom-stereo"`
	ClearUnknownBondStereo       bool `option:"name=standardize-clear-unknown-bond-stereo"`
	ClearCisTrans                bool `option:"name=standardize-clear-cis-trans"`
	StereoFromCoordinates        bool `option:"name=standardize-stereo-from-coordinates"`
	RepositionStereoBonds        bool `option:"name=standardize-reposition-stereo-bonds"`
	RepositionAxialStereoBonds   bool `option:"name=standardize-reposition-axial-stereo-bonds"`
	FixDirectionWedgeBonds       bool `option:"name=standardize-fix-direction-wedge-bonds"`
	ClearCharges                 bool `option:"name=standardize-clear-charges"`
	HighlightColors              bool `option:"name=standardize-highlight-colors"`
	NeutralizeZwitterions        bool `option:"name=standardize-neutralize-zwitterions"`
	ClearUnusualValences         bool `option:"name=standardize-clear-unusual-valences"`
	ClearIsotopes                bool `option:"name=standardize-clear-isotopes"`
	ClearDativeBonds             bool `option:"name=standardize-clear-dative-bonds"`
	ClearHydrogenBonds           bool `option:"name=standardize-clear-hydrogen-bonds"`
	LocalizeMarkushRAtomsOnRings bool `option:"name=standardize-localize-markush-r-atoms-on-rings"`
	CreateDativeBonds            bool `option:"name=standardize-create-dative-bonds"`
	CreateHydrogenBonds          bool `option:"name=standardize-create-hydrogen-bonds"`
	RemoveExtraStereoBonds       bool `option:"name=standardize-remove-extra-stereo-bonds"`
}

// IonizeOptions selects the pKa model used for ionization.
type IonizeOptions struct {
	Model    enums.PkaModel
	Level    int `option:"name=pKa-model-level,desc='Depth of the advanced pKa model'"`
	MinLevel int `option:"name=pKa-model-min-level,desc='Minimum depth of the advanced pKa model'"`
}

// MassOptions controls mass computations.
type MassOptions struct {
	SkipErrorOnPseudoatoms bool `option:"name=mass-skip-error-on-pseudoatoms,desc='Ignore pseudoatoms instead of failing'"`
}

// GrossFormulaOptions controls gross formula output.
type GrossFormulaOptions struct {
	AddRSites bool `option:"name=gross-formula-add-rsites,desc='Include R-sites in gross formulas'"`
}

// NewOptions returns a context holding the default of every option.
func NewOptions() *Options {
	o := &Options{}
	o.ResetBasic()
	return o
}

// Init restores the defaults of every setting except the standardization
// steps and the ionization model.
func (o *Options) Init() {
	standardize, ionize := o.Standardize, o.Ionize
	*o = Options{
		DeconvolutionAromatization: true,
		DecoIgnoreErrors:           true,
		Molfile: MolfileOptions{
			SavingMode:   enums.MolfileSavingModeAuto,
			AddImplicitH: true,
		},
		FilenameEncoding: enums.FilenameEncodingASCII,
		Fingerprint: FingerprintOptions{
			OrdQwords: 25,
			SimQwords: 8,
			AnyQwords: 15,
			TauQwords: 10,
			Ext:       true,
		},
		Layout: LayoutOptions{
			Orientation:       enums.LayoutOrientationUnspecified,
			HorIntervalFactor: 1.4,
		},
		Embedding: EmbeddingOptions{
			FindUnique: true,
		},
		MaxEmbeddings: 10000,
		Aromaticity: AromaticityOptions{
			Method:            enums.AromaticityMethodGeneric,
			DearomatizeVerify: true,
		},
		Standardize: standardize,
		Ionize:      ionize,
	}
}

// ResetBasic clears the standardization steps, restores the default
// ionization model and then runs Init.
func (o *Options) ResetBasic() {
	o.Standardize = StandardizeOptions{}
	o.Ionize = IonizeOptions{Model: enums.PkaModelSimple}
	o.Init()
}
