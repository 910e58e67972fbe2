// Package opt models values that may be absent.
//
// Report fields distinguish "not reported" from "reported as zero"; a plain
// zero value cannot carry that difference, so metadata and records use Value.
package opt

import "encoding/json"

// Value holds a T that is either present or absent. The zero Value is absent.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns a present Value.
func Some[T any](v T) Value[T] { return Value[T]{v: v, ok: true} }

// None returns an absent Value.
func None[T any]() Value[T] { return Value[T]{} }

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) { return o.v, o.ok }

// Present reports whether the value was set.
func (o Value[T]) Present() bool { return o.ok }

// Or returns the value when present and fallback otherwise.
func (o Value[T]) Or(fallback T) T {
	if o.ok {
		return o.v
	}
	return fallback
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Value[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.v
	return &v
}

// MarshalJSON encodes an absent value as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON treats null as absent.
func (o *Value[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Value[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
