// Package option provides a typed option registry.
//
// An option is a named configuration slot of one of five kinds: bool, int,
// float, string or action. Every option is bound to a getter and a setter that
// read and write state owned by the caller, usually fields of one
// configuration struct. The registry never stores values itself.
//
// # Core Components
//
//   - Option: a name, a Kind and a typed handler. Handlers are stored as a
//     tagged variant and dispatched with a type switch, never through
//     reflection or untyped function values.
//   - Registry: name to Option lookup, typed Set/Get, InvokeAction, and the
//     text path (SetFromString, Format) used by flags and config files.
//   - NewEnum and NewComposite: string options whose values are a fixed,
//     ordered set of case-insensitive labels.
//   - GetValue, SetValue and the *Field constructors: accessor factories that
//     turn a pointer to a field into a getter/setter pair.
//
// # Usage
//
// Options are registered in one burst during initialization:
//
//	reg := option.NewRegistry()
//	err := reg.Batch(func(r *option.Registrar) error {
//	    return errors.Join(
//	        r.Register(option.IntField("max-embeddings", &cfg.MaxEmbeddings)),
//	        r.Register(option.NewEnum("layout-orientation",
//	            enums.LayoutOrientationValues(), enums.LayoutOrientation.String,
//	            option.GetValue(&cfg.LayoutOrientation), option.SetValue(&cfg.LayoutOrientation))),
//	    )
//	})
//
// After the burst the registry is read-mostly. The registry does not
// serialize access to the state behind the handlers.
package option
