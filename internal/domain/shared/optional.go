package shared

import (
	"encoding/json"
)

// Optional is a JSON field that distinguishes an omitted key from an
// explicit null. It backs partial updates: an omitted key leaves the
// stored value alone, null clears it and any other value replaces it.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional carrying v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional carrying an explicit null
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the key
// is present, so Set stays false for omitted keys.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements json.Marshaler
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// HasValue reports whether a non-null value was supplied
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

// Apply writes the value into dst when one was supplied.
// It returns an error when the field was explicitly nulled, since dst
// cannot hold a null.
func (o Optional[T]) Apply(dst *T, field string) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return InvalidInput(field + " cannot be null")
	}
	*dst = o.Value
	return nil
}

// ApplyFunc passes a supplied value to set, which normalizes and
// validates it. Null is rejected as in Apply.
func (o Optional[T]) ApplyFunc(field string, set func(T) error) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return InvalidInput(field + " cannot be null")
	}
	return set(o.Value)
}

// ApplyNullable writes the value into a nullable destination: null
// clears it, a value replaces it, omission leaves it untouched.
func (o Optional[T]) ApplyNullable(dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}

// ApplyOrZero writes the value into dst, resetting it to the zero value
// on an explicit null. It suits nullable text columns that are modelled
// as plain strings.
func (o Optional[T]) ApplyOrZero(dst *T) {
	if !o.Set {
		return
	}
	if o.Null {
		var zero T
		*dst = zero
		return
	}
	*dst = o.Value
}
