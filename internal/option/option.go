package option

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apstndb/chemopt/internal/parser"
)

// handler is the typed getter/setter pair behind a value option.
// The parser reads the textual form used by SetFromString.
type handler[T any] struct {
	get   func() (T, error)
	set   func(T) error
	parse parser.Parser[T]
}

type actionHandler struct {
	invoke func() error
}

// Option is a named, typed configuration slot.
// Options are built with the New* constructors and handed to a Registrar.
type Option struct {
	name        string
	description string
	kind        Kind
	allowed     []string
	maxLen      int

	// One of *handler[bool], *handler[int], *handler[float64],
	// *handler[string] or *actionHandler, matching kind.
	handler any
}

// Info describes a registered option.
type Info struct {
	Name        string
	Description string
	Kind        Kind
	Allowed     []string
	MaxLength   int
}

func newOption[T any](name string, kind Kind, get func() (T, error), set func(T) error, p parser.Parser[T]) *Option {
	if get == nil {
		panic(fmt.Sprintf("getter not set for option %s", name))
	}
	if set == nil {
		panic(fmt.Sprintf("setter not set for option %s", name))
	}
	return &Option{
		name:    name,
		kind:    kind,
		handler: &handler[T]{get: get, set: set, parse: p},
	}
}

func infallible[T any](get func() T) func() (T, error) {
	if get == nil {
		return nil
	}
	return func() (T, error) {
		return get(), nil
	}
}

// NewBool creates a bool option.
func NewBool(name string, get func() bool, set func(bool) error) *Option {
	return newOption[bool](name, BoolKind, infallible(get), set, parser.NewBoolParser())
}

// NewInt creates an int option. The registry performs no range checks;
// the setter may reject values itself.
func NewInt(name string, get func() int, set func(int) error) *Option {
	return newOption[int](name, IntKind, infallible(get), set, parser.NewIntParser())
}

// NewFloat creates a float option.
func NewFloat(name string, get func() float64, set func(float64) error) *Option {
	return newOption[float64](name, FloatKind, infallible(get), set, parser.NewFloatParser())
}

// NewString creates a free-form string option.
func NewString(name string, get func() string, set func(string) error) *Option {
	return newOption[string](name, StringKind, infallible(get), set, parser.NewStringParser())
}

// NewAction creates an option that runs invoke and carries no value.
func NewAction(name string, invoke func() error) *Option {
	if invoke == nil {
		panic(fmt.Sprintf("invoker not set for option %s", name))
	}
	return &Option{
		name:    name,
		kind:    ActionKind,
		handler: &actionHandler{invoke: invoke},
	}
}

// NewEnum creates a string option whose accepted values are label(v) for each
// v in values, matched case-insensitively. Reading the option returns the
// label of the current state. A state outside values is reported as
// ErrUnlabeledState.
func NewEnum[T comparable](name string, values []T, label func(T) string, get func() T, set func(T) error) *Option {
	if get == nil || set == nil {
		panic(fmt.Sprintf("getter and setter must be set for option %s", name))
	}
	p := parser.NewEnumParser(values, label)

	o := newOption[string](name, StringKind,
		func() (string, error) {
			v := get()
			l, ok := p.Label(v)
			if !ok {
				return "", fmt.Errorf("%w: %v", ErrUnlabeledState, v)
			}
			return l, nil
		},
		func(s string) error {
			v, err := p.ParseAndValidate(s)
			if err != nil {
				return invalidValue(name, s, err)
			}
			return set(v)
		},
		parser.NewStringParser(),
	)
	o.allowed = p.Labels()
	return o
}

// CompositeLabel is one label of a composite option.
// Apply derives the new state from the current one; Match reports whether a
// state reads back as this label.
type CompositeLabel[S any] struct {
	Label string
	Apply func(S) S
	Match func(S) bool
}

// NewComposite creates a string option whose labels each update several
// fields of one state value S at once. Setting reads the whole state, applies
// the label and writes it back with a single set call, so a failed set leaves
// no field changed. Reading returns the first label, in declaration order,
// whose Match accepts the state.
func NewComposite[S any](name string, get func() S, set func(S) error, labels ...CompositeLabel[S]) *Option {
	if get == nil || set == nil {
		panic(fmt.Sprintf("getter and setter must be set for option %s", name))
	}
	indexes := make([]int, len(labels))
	for i, l := range labels {
		if l.Apply == nil || l.Match == nil {
			panic(fmt.Sprintf("label %q of option %s needs Apply and Match", l.Label, name))
		}
		indexes[i] = i
	}
	p := parser.NewEnumParser(indexes, func(i int) string { return labels[i].Label })

	o := newOption[string](name, StringKind,
		func() (string, error) {
			cur := get()
			for _, l := range labels {
				if l.Match(cur) {
					return l.Label, nil
				}
			}
			return "", fmt.Errorf("%w: %+v", ErrUnlabeledState, cur)
		},
		func(s string) error {
			i, err := p.ParseAndValidate(s)
			if err != nil {
				return invalidValue(name, s, err)
			}
			return set(labels[i].Apply(get()))
		},
		parser.NewStringParser(),
	)
	o.allowed = p.Labels()
	return o
}

// WithDescription sets the help text of the option.
func (o *Option) WithDescription(description string) *Option {
	o.description = description
	return o
}

// WithMaxLength limits string values to n bytes. Longer values are rejected
// with InvalidValueError before the setter runs.
func (o *Option) WithMaxLength(n int) *Option {
	if o.kind != StringKind {
		panic(fmt.Sprintf("option %s is %s, max length applies to strings", o.name, o.kind))
	}
	h := o.handler.(*handler[string])
	h.parse = parser.NewStringParser().WithMaxLength(n)
	o.maxLen = n
	return o
}

// Name returns the option name.
func (o *Option) Name() string {
	return o.name
}

// Kind returns the option kind.
func (o *Option) Kind() Kind {
	return o.kind
}

// Info returns a description of the option.
func (o *Option) Info() Info {
	return Info{
		Name:        o.name,
		Description: o.description,
		Kind:        o.kind,
		Allowed:     append([]string(nil), o.allowed...),
		MaxLength:   o.maxLen,
	}
}

// set assumes v.Kind() == o.kind; the registry checks it before dispatch.
func (o *Option) set(v Value) error {
	var err error
	switch h := o.handler.(type) {
	case *handler[bool]:
		err = h.set(v.b)
	case *handler[int]:
		err = h.set(v.i)
	case *handler[float64]:
		err = h.set(v.f)
	case *handler[string]:
		if err := h.parse.Validate(v.s); err != nil {
			return invalidValue(o.name, v.s, err)
		}
		err = h.set(v.s)
	default:
		return &KindMismatchError{Name: o.name, Registered: o.kind, Requested: v.kind}
	}
	return o.wrap(err)
}

func (o *Option) get() (Value, error) {
	switch h := o.handler.(type) {
	case *handler[bool]:
		v, err := h.get()
		return BoolValue(v), o.wrap(err)
	case *handler[int]:
		v, err := h.get()
		return IntValue(v), o.wrap(err)
	case *handler[float64]:
		v, err := h.get()
		return FloatValue(v), o.wrap(err)
	case *handler[string]:
		v, err := h.get()
		return StringValue(v), o.wrap(err)
	default:
		return Value{}, fmt.Errorf("%s: %w", o.name, ErrNoValue)
	}
}

func (o *Option) setText(text string) error {
	switch h := o.handler.(type) {
	case *handler[bool]:
		return setParsed(o, h, text, BoolValue)
	case *handler[int]:
		return setParsed(o, h, text, IntValue)
	case *handler[float64]:
		return setParsed(o, h, text, FloatValue)
	case *handler[string]:
		return setParsed(o, h, text, StringValue)
	case *actionHandler:
		if strings.TrimSpace(text) != "" {
			return &InvalidValueError{Name: o.name, Value: text, Err: errors.New("actions take no value")}
		}
		return o.invoke()
	default:
		return fmt.Errorf("%s: unsupported handler %T", o.name, h)
	}
}

func setParsed[T any](o *Option, h *handler[T], text string, wrap func(T) Value) error {
	v, err := h.parse.ParseAndValidate(text)
	if err != nil {
		return invalidValue(o.name, text, err)
	}
	return o.set(wrap(v))
}

func (o *Option) invoke() error {
	h, ok := o.handler.(*actionHandler)
	if !ok {
		return &UnknownOptionError{Name: o.name, Action: true}
	}
	return o.wrap(h.invoke())
}

// wrap prefixes handler errors with the option name.
// InvalidValueError already names the option and is returned as is.
func (o *Option) wrap(err error) error {
	if err == nil {
		return nil
	}
	var invalid *InvalidValueError
	if errors.As(err, &invalid) {
		return err
	}
	return fmt.Errorf("%s: %w", o.name, err)
}

func invalidValue(name, value string, err error) *InvalidValueError {
	e := &InvalidValueError{Name: name, Value: value, Err: err}
	var labelErr *parser.UnknownLabelError
	if errors.As(err, &labelErr) {
		e.Allowed = labelErr.Allowed
	}
	return e
}
