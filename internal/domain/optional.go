package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is one field of a partial update.
// Set reports whether the key was present in the payload at all; Null
// reports whether it was present with a JSON null value.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is what makes absent and null distinguishable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Apply writes the value into dst when the field was supplied.
func (o Optional[T]) Apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}
