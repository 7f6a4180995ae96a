package dhi

// Record is a read-only key -> value view over one item being validated.
// Values are expected to be Go scalars (integers, floats, strings, bools) or
// nil; anything else fails the typed checks rather than crashing.
type Record interface {
	// Get returns the value for a field and whether the field exists.
	Get(name string) (any, bool)
}

// MapRecord adapts a plain map to the Record view. This is the native-path
// record shape; the JSON pipeline builds the same shape transiently per
// element.
type MapRecord map[string]any

// Get implements Record.
func (m MapRecord) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}
