// Package enums holds the discrete settings of the toolkit configuration.
// Labels come from the line comments; they are the exact strings users type.
package enums

// MolfileSavingMode selects the connection table version written to molfiles.
//
//go:generate enumer -type=MolfileSavingMode -linecomment
type MolfileSavingMode int

const (
	MolfileSavingModeAuto MolfileSavingMode = iota // auto
	MolfileSavingMode2000                          // 2000
	MolfileSavingMode3000                          // 3000
)

// FilenameEncoding is the encoding assumed for file names passed to the toolkit.
//
//go:generate enumer -type=FilenameEncoding -linecomment
type FilenameEncoding int

const (
	FilenameEncodingASCII FilenameEncoding = iota // ASCII
	FilenameEncodingUTF8                          // UTF-8
)

// LayoutOrientation is the preferred orientation of 2D layouts.
//
//go:generate enumer -type=LayoutOrientation -linecomment
type LayoutOrientation int

const (
	LayoutOrientationUnspecified LayoutOrientation = iota // unspecified
	LayoutOrientationHorizontal                           // horizontal
	LayoutOrientationVertical                             // vertical
)

// AromaticityMethod is the aromaticity model used by aromatization.
//
//go:generate enumer -type=AromaticityMethod -linecomment
type AromaticityMethod int

const (
	AromaticityMethodBasic   AromaticityMethod = iota // basic
	AromaticityMethodGeneric                          // generic
)

// PkaModel is the model used to estimate pKa values during ionization.
//
//go:generate enumer -type=PkaModel -linecomment
type PkaModel int

const (
	PkaModelSimple   PkaModel = iota // simple
	PkaModelAdvanced                 // advanced
)
