package option

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Registry manages a collection of options keyed by case-sensitive name.
type Registry struct {
	mu       sync.RWMutex
	options  map[string]*Option
	strict   bool
	logger   *slog.Logger
	observer Observer
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithStrictRegistration makes registering an existing name fail with
// DuplicateNameError instead of replacing the previous option.
func WithStrictRegistration() RegistryOption {
	return func(r *Registry) {
		r.strict = true
	}
}

// WithLogger sets the logger for registration and dispatch debug logs.
// Without it the registry logs to slog.Default at the time of each call.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithObserver installs an observer for every registry operation.
func WithObserver(o Observer) RegistryOption {
	return func(r *Registry) {
		r.observer = o
	}
}

// NewRegistry creates an empty option registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		options: make(map[string]*Option),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

func (r *Registry) notify(e Event) {
	if r.observer != nil {
		r.observer(e)
	}
}

// Registrar registers options while its Batch holds the registry lock.
// It must not be used after the Batch function returns.
type Registrar struct {
	r *Registry
}

// Batch runs fn with the registry's exclusive lock held, so a burst of
// registrations is atomic with respect to lookups. The lock is released on
// every exit path, including errors and panics. The first error returned by
// fn is returned; options registered before it stay registered.
func (r *Registry) Batch(fn func(*Registrar) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&Registrar{r: r})
}

// Register adds opt under its name.
func (rg *Registrar) Register(opt *Option) (err error) {
	r := rg.r
	defer func() {
		r.notify(Event{Op: OpRegister, Name: opt.name, Kind: opt.kind, Err: err})
	}()

	if opt.name == "" {
		return ErrEmptyName
	}
	if _, exists := r.options[opt.name]; exists {
		if r.strict {
			return &DuplicateNameError{Name: opt.name}
		}
		r.log().Debug("option replaced", "name", opt.name, "kind", opt.kind)
	}

	r.options[opt.name] = opt
	r.log().Debug("option registered", "name", opt.name, "kind", opt.kind)
	return nil
}

// RegisterBool registers a bool option.
func (rg *Registrar) RegisterBool(name string, set func(bool) error, get func() bool) error {
	return rg.Register(NewBool(name, get, set))
}

// RegisterInt registers an int option.
func (rg *Registrar) RegisterInt(name string, set func(int) error, get func() int) error {
	return rg.Register(NewInt(name, get, set))
}

// RegisterFloat registers a float option.
func (rg *Registrar) RegisterFloat(name string, set func(float64) error, get func() float64) error {
	return rg.Register(NewFloat(name, get, set))
}

// RegisterString registers a free-form string option.
func (rg *Registrar) RegisterString(name string, set func(string) error, get func() string) error {
	return rg.Register(NewString(name, get, set))
}

// RegisterAction registers an action option.
func (rg *Registrar) RegisterAction(name string, invoke func() error) error {
	return rg.Register(NewAction(name, invoke))
}

// Register adds a single option in its own burst.
func (r *Registry) Register(opt *Option) error {
	return r.Batch(func(rg *Registrar) error {
		return rg.Register(opt)
	})
}

// RegisterBool registers a bool option in its own burst.
func (r *Registry) RegisterBool(name string, set func(bool) error, get func() bool) error {
	return r.Register(NewBool(name, get, set))
}

// RegisterInt registers an int option in its own burst.
func (r *Registry) RegisterInt(name string, set func(int) error, get func() int) error {
	return r.Register(NewInt(name, get, set))
}

// RegisterFloat registers a float option in its own burst.
func (r *Registry) RegisterFloat(name string, set func(float64) error, get func() float64) error {
	return r.Register(NewFloat(name, get, set))
}

// RegisterString registers a string option in its own burst.
func (r *Registry) RegisterString(name string, set func(string) error, get func() string) error {
	return r.Register(NewString(name, get, set))
}

// RegisterAction registers an action option in its own burst.
func (r *Registry) RegisterAction(name string, invoke func() error) error {
	return r.Register(NewAction(name, invoke))
}

func (r *Registry) lookup(name string) (*Option, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opt, ok := r.options[name]
	return opt, ok
}

func (r *Registry) lookupKind(name string, kind Kind) (*Option, error) {
	opt, ok := r.lookup(name)
	if !ok {
		return nil, &UnknownOptionError{Name: name}
	}
	if opt.kind != kind {
		return nil, &KindMismatchError{Name: name, Registered: opt.kind, Requested: kind}
	}
	return opt, nil
}

// Set writes v to the option name. The kind of v must match the registered kind.
func (r *Registry) Set(name string, v Value) (err error) {
	defer func() {
		r.notify(Event{Op: OpSet, Name: name, Kind: v.kind, Value: v.String(), Err: err})
	}()

	opt, err := r.lookupKind(name, v.kind)
	if err != nil {
		return err
	}
	if err := opt.set(v); err != nil {
		return err
	}
	r.log().Debug("option set", "name", name, "kind", v.kind, "value", v.String())
	return nil
}

// SetBool sets a bool option.
func (r *Registry) SetBool(name string, v bool) error {
	return r.Set(name, BoolValue(v))
}

// SetInt sets an int option.
func (r *Registry) SetInt(name string, v int) error {
	return r.Set(name, IntValue(v))
}

// SetFloat sets a float option.
func (r *Registry) SetFloat(name string, v float64) error {
	return r.Set(name, FloatValue(v))
}

// SetString sets a string option. Enumerated options match v against their
// labels ignoring case.
func (r *Registry) SetString(name string, v string) error {
	return r.Set(name, StringValue(v))
}

// SetFromString parses text with the option's own parser and sets the result.
// Action options are invoked when text is empty.
func (r *Registry) SetFromString(name, text string) (err error) {
	opt, ok := r.lookup(name)
	if !ok {
		err = &UnknownOptionError{Name: name}
		r.notify(Event{Op: OpSet, Name: name, Value: text, Err: err})
		return err
	}
	if opt.kind == ActionKind {
		if strings.TrimSpace(text) != "" {
			err = &InvalidValueError{Name: name, Value: text, Err: errors.New("actions take no value")}
			r.notify(Event{Op: OpInvoke, Name: name, Kind: ActionKind, Value: text, Err: err})
			return err
		}
		return r.InvokeAction(name)
	}

	defer func() {
		r.notify(Event{Op: OpSet, Name: name, Kind: opt.kind, Value: text, Err: err})
	}()
	if err := opt.setText(text); err != nil {
		return err
	}
	r.log().Debug("option set", "name", name, "kind", opt.kind, "text", text)
	return nil
}

// Get reads the current value of a non-action option.
func (r *Registry) Get(name string) (v Value, err error) {
	opt, ok := r.lookup(name)
	if !ok {
		err = &UnknownOptionError{Name: name}
		r.notify(Event{Op: OpGet, Name: name, Err: err})
		return Value{}, err
	}
	return r.get(opt)
}

func (r *Registry) get(opt *Option) (v Value, err error) {
	defer func() {
		e := Event{Op: OpGet, Name: opt.name, Kind: opt.kind, Err: err}
		if err == nil {
			e.Value = v.String()
		}
		r.notify(e)
	}()
	return opt.get()
}

func (r *Registry) getKind(name string, kind Kind) (Value, error) {
	opt, err := r.lookupKind(name, kind)
	if err != nil {
		r.notify(Event{Op: OpGet, Name: name, Kind: kind, Err: err})
		return Value{}, err
	}
	return r.get(opt)
}

// GetBool reads a bool option.
func (r *Registry) GetBool(name string) (bool, error) {
	v, err := r.getKind(name, BoolKind)
	return v.b, err
}

// GetInt reads an int option.
func (r *Registry) GetInt(name string) (int, error) {
	v, err := r.getKind(name, IntKind)
	return v.i, err
}

// GetFloat reads a float option.
func (r *Registry) GetFloat(name string) (float64, error) {
	v, err := r.getKind(name, FloatKind)
	return v.f, err
}

// GetString reads a string option. Enumerated options return their canonical label.
func (r *Registry) GetString(name string) (string, error) {
	v, err := r.getKind(name, StringKind)
	return v.s, err
}

// GetStringInto copies a string option into buf and returns the number of
// bytes written. If the value is longer than len(buf) it fails with
// BufferTooSmallError and buf is not touched.
func (r *Registry) GetStringInto(name string, buf []byte) (int, error) {
	s, err := r.GetString(name)
	if err != nil {
		return 0, err
	}
	if len(s) > len(buf) {
		return 0, &BufferTooSmallError{Name: name, Needed: len(s), Capacity: len(buf)}
	}
	return copy(buf, s), nil
}

// Format returns the current value of a non-action option as text.
func (r *Registry) Format(name string) (string, error) {
	v, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// InvokeAction runs an action option. A missing name or a non-action option
// fails with UnknownOptionError.
func (r *Registry) InvokeAction(name string) (err error) {
	defer func() {
		r.notify(Event{Op: OpInvoke, Name: name, Kind: ActionKind, Err: err})
	}()

	opt, ok := r.lookup(name)
	if !ok || opt.kind != ActionKind {
		return &UnknownOptionError{Name: name, Action: true}
	}
	if err := opt.invoke(); err != nil {
		return err
	}
	r.log().Debug("action invoked", "name", name)
	return nil
}

// Lookup returns the description of a registered option.
func (r *Registry) Lookup(name string) (Info, bool) {
	opt, ok := r.lookup(name)
	if !ok {
		return Info{}, false
	}
	return opt.Info(), true
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.options)
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.options)
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Infos returns descriptions of all registered options sorted by name.
func (r *Registry) Infos() []Info {
	r.mu.RLock()
	infos := lo.MapToSlice(r.options, func(_ string, opt *Option) Info {
		return opt.Info()
	})
	r.mu.RUnlock()

	slices.SortFunc(infos, func(a, b Info) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos
}
