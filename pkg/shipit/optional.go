package shipit

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional holds a value that may be absent. An absent Optional is omitted
// from encoded payloads when the field carries the omitzero option. A JSON
// null on the wire decodes to an absent Optional.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// IsZero reports whether the value is absent.
func (o Optional[T]) IsZero() bool { return !o.set }

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// OrElse returns the value if present and fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.set {
		return fallback
	}
	return o.value
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(normalizeFor[T](data), &v); err != nil {
		return err
	}
	*o = Optional[T]{value: v, set: true}
	return nil
}

type nullableState uint8

const (
	nullableUnset nullableState = iota
	nullableNull
	nullableValue
)

// Nullable is a field with three states: absent, explicitly null, or a
// value. Absent fields are omitted (omitzero), null fields are encoded as
// JSON null.
type Nullable[T any] struct {
	value T
	state nullableState
}

// Value returns a Nullable holding v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, state: nullableValue}
}

// Null returns an explicitly null Nullable.
func Null[T any]() Nullable[T] {
	return Nullable[T]{state: nullableNull}
}

// IsZero reports whether the value is absent.
func (n Nullable[T]) IsZero() bool { return n.state == nullableUnset }

// IsSet reports whether the field is present on the wire, null or not.
func (n Nullable[T]) IsSet() bool { return n.state != nullableUnset }

// IsNull reports whether the value is explicitly null.
func (n Nullable[T]) IsNull() bool { return n.state == nullableNull }

// Get returns the value and whether one is held. Null and absent both
// report false.
func (n Nullable[T]) Get() (T, bool) { return n.value, n.state == nullableValue }

// OrElse returns the value if present and fallback when absent or null.
func (n Nullable[T]) OrElse(fallback T) T {
	if n.state != nullableValue {
		return fallback
	}
	return n.value
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.state != nullableValue {
		return jsonNull, nil
	}
	return json.Marshal(n.value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = Nullable[T]{state: nullableNull}
		return nil
	}
	var v T
	if err := json.Unmarshal(normalizeFor[T](data), &v); err != nil {
		return err
	}
	*n = Nullable[T]{value: v, state: nullableValue}
	return nil
}
