package option

// GetValue returns a getter reading *p.
func GetValue[T any](p *T) func() T {
	return func() T {
		return *p
	}
}

// SetValue returns a setter writing *p. The setter never fails.
func SetValue[T any](p *T) func(T) error {
	return func(v T) error {
		*p = v
		return nil
	}
}

// Bind returns the getter and setter for *p.
func Bind[T any](p *T) (func() T, func(T) error) {
	return GetValue(p), SetValue(p)
}

// BoolField creates a bool option backed by *p.
func BoolField(name string, p *bool) *Option {
	return NewBool(name, GetValue(p), SetValue(p))
}

// IntField creates an int option backed by *p.
func IntField(name string, p *int) *Option {
	return NewInt(name, GetValue(p), SetValue(p))
}

// FloatField creates a float option backed by *p.
func FloatField(name string, p *float64) *Option {
	return NewFloat(name, GetValue(p), SetValue(p))
}

// StringField creates a free-form string option backed by *p.
func StringField(name string, p *string) *Option {
	return NewString(name, GetValue(p), SetValue(p))
}
