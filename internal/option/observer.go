package option

// Op identifies a registry operation reported to an Observer.
//
//go:generate enumer -type=Op -linecomment
type Op int

const (
	OpRegister Op = iota // register
	OpSet                // set
	OpGet                // get
	OpInvoke             // invoke
)

// Event describes one registry operation.
// Value is the textual form of the value written or read, empty for actions
// and failed reads.
type Event struct {
	Op    Op
	Name  string
	Kind  Kind
	Value string
	Err   error
}

// Observer receives an Event after every registry operation.
// Register events are delivered while the registration lock is held, so an
// observer must not call back into the registry.
type Observer func(Event)
