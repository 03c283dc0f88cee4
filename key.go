package injectable

import "reflect"

// Key identifies a service by its declared type.
// Keys are derived from the static type parameter used at the call site, never
// from the dynamic type of the value a factory returns, so an interface service
// overridden by a different implementation keeps the same key.
type Key struct {
	typ reflect.Type
}

// KeyOf returns the key for the declared type T.
//
// Example:
//
//	var loggerKey = KeyOf[Logger]()
func KeyOf[T any]() Key {
	return Key{typ: reflect.TypeFor[T]()}
}

// Type returns the declared type behind the key.
func (k Key) Type() reflect.Type {
	return k.typ
}

// IsZero reports whether the key was never derived from a type.
func (k Key) IsZero() bool { return k.typ == nil }

// String returns a human-readable representation of the key.
func (k Key) String() string {
	if k.typ == nil {
		return "<nil>"
	}
	return k.typ.String()
}

// KeyFor returns the key for a type known only at runtime.
// KeyFor(reflect.TypeFor[T]()) equals KeyOf[T]().
func KeyFor(typ reflect.Type) Key {
	return Key{typ: typ}
}

// isNil reports whether v carries no service: a nil interface or a nil
// pointer, map, channel, or func. Nil slices are treated as values.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
