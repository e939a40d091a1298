package option

// Kind is the type of value an option carries.
//
//go:generate enumer -type=Kind -linecomment
type Kind int

const (
	BoolKind   Kind = iota // bool
	IntKind                // int
	FloatKind              // float
	StringKind             // string
	ActionKind             // action
)
