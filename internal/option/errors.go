package option

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors for option operations
var (
	// ErrEmptyName is returned when registering an option without a name.
	ErrEmptyName = errors.New("option name must not be empty")

	// ErrNoValue is returned when reading the value of an action option.
	ErrNoValue = errors.New("action options have no value")

	// ErrUnlabeledState is returned when an enumerated option's state has no label.
	ErrUnlabeledState = errors.New("current state has no label")
)

// Error types for proper error handling with errors.Is/As
type (
	// UnknownOptionError is returned when a name is not registered.
	// Action is set when an action was requested and the name is missing
	// or registered with another kind.
	UnknownOptionError struct {
		Name   string
		Action bool
	}

	// KindMismatchError is returned when an option is addressed with a kind
	// other than the one it was registered with.
	KindMismatchError struct {
		Name       string
		Registered Kind
		Requested  Kind
	}

	// InvalidValueError is returned when a value of the right kind is outside
	// the option's accepted domain.
	InvalidValueError struct {
		Name    string
		Value   string
		Allowed []string
		Err     error
	}

	// BufferTooSmallError is returned when a string value does not fit the
	// caller's buffer.
	BufferTooSmallError struct {
		Name     string
		Needed   int
		Capacity int
	}

	// DuplicateNameError is returned by a strict registry when a name is
	// registered twice.
	DuplicateNameError struct {
		Name string
	}
)

func (e *UnknownOptionError) Error() string {
	if e.Action {
		return fmt.Sprintf("unknown action: %s", e.Name)
	}
	return fmt.Sprintf("unknown option: %s", e.Name)
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("option %s is %s, not %s", e.Name, e.Registered, e.Requested)
}

func (e *InvalidValueError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid value %q for %s", e.Value, e.Name)
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&sb, ", allowed values are %s", quoteAll(e.Allowed))
	} else if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("value of %s needs %d bytes, buffer holds %d", e.Name, e.Needed, e.Capacity)
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("option %s already registered", e.Name)
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
