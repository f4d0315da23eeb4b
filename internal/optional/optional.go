// Package optional provides a tri-state JSON field wrapper that preserves the
// difference between a field that is absent from the payload, a field that is
// explicitly null, and a field that carries a value. Partial-update inputs use
// it so that omitted fields leave stored state untouched while explicit nulls
// clear nullable fields.
package optional

import "encoding/json"

// Optional holds the decoded state of a single JSON field.
// The zero value means the field was absent.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional representing an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was present in the payload, either as a
// value or as an explicit null.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present as an explicit null.
func (o Optional[T]) IsNull() bool { return o.null }

// Value returns the carried value and whether one is present
// (set and not null).
func (o Optional[T]) Value() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// UnmarshalJSON is only invoked for fields present in the payload, which is
// what makes the absent/present distinction observable.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	if string(b) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(b, &o.value)
}

// MarshalJSON renders the carried value, or null when not set.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
