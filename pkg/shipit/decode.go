package shipit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ID is an identifier the API sends either as a JSON string or a number.
// It is always held as its decimal or string form.
type ID string

// String returns the identifier as sent by the API.
func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty identifier")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*id = ID(n.String())
		return nil
	}
	return fmt.Errorf("identifier must be a string or number, got %s", data)
}

// decodeObject decodes a JSON object into target after checking that every
// required key is present and not null. target is normally a pointer to a
// method-less alias of the caller's type so that decoding does not recurse.
func decodeObject(data []byte, typeName string, target any, required ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &DecodingError{Type: typeName, Err: err}
	}
	if fields == nil {
		return &DecodingError{Type: typeName, Err: errors.New("expected an object, got null")}
	}

	for _, key := range required {
		raw, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return &DecodingError{Type: typeName, Field: key, Err: ErrMissingField}
		}
	}

	if normalizeIntFields(target, fields) {
		var err error
		if data, err = json.Marshal(fields); err != nil {
			return &DecodingError{Type: typeName, Err: err}
		}
	}

	if err := json.Unmarshal(data, target); err != nil {
		return wrapDecodeError(typeName, err)
	}
	return nil
}

// maxExactInt is the largest magnitude a float64 holds without losing
// integer precision.
const maxExactInt = 1 << 53

// integralNumber rewrites a JSON number written in floating form (2.0,
// 1e2) as a plain integer when it has no fractional part. It reports false
// for anything else, leaving fractional values to fail integer decoding.
func integralNumber(raw []byte) ([]byte, bool) {
	s := string(bytes.TrimSpace(raw))
	if s == "" || !strings.ContainsAny(s, ".eE") {
		return nil, false
	}
	if c := s[0]; c != '-' && (c < '0' || c > '9') {
		return nil, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return nil, false
	}
	return strconv.AppendInt(nil, int64(f), 10), true
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// normalizeIntFields rewrites integral floating values of the integer
// fields of the struct target points to. Optional and Nullable integers
// normalize themselves.
func normalizeIntFields(target any, fields map[string]json.RawMessage) bool {
	rt := reflect.TypeOf(target)
	if rt == nil || rt.Kind() != reflect.Pointer || rt.Elem().Kind() != reflect.Struct {
		return false
	}
	rt = rt.Elem()

	changed := false
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() || !isIntKind(f.Type.Kind()) {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = f.Name
		}
		if n, ok := integralNumber(fields[name]); ok {
			fields[name] = n
			changed = true
		}
	}
	return changed
}

// normalizeFor applies integralNumber when T is an integer type.
func normalizeFor[T any](data []byte) []byte {
	if !isIntKind(reflect.TypeOf((*T)(nil)).Elem().Kind()) {
		return data
	}
	if n, ok := integralNumber(data); ok {
		return n
	}
	return data
}

func wrapDecodeError(typeName string, err error) error {
	var nested *DecodingError
	if errors.As(err, &nested) {
		return nested
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodingError{Type: typeName, Field: typeErr.Field, Err: err}
	}
	return &DecodingError{Type: typeName, Err: err}
}

// decodeInto returns a Decode function for a pointer result type.
func decodeInto[T any](typeName string) func([]byte) (*T, error) {
	return func(body []byte) (*T, error) {
		var out T
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, wrapDecodeError(typeName, err)
		}
		return &out, nil
	}
}

// decodeDataMember decodes the object held under the top-level "data" key.
func decodeDataMember[T any](typeName string) func([]byte) (*T, error) {
	return func(body []byte) (*T, error) {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, wrapDecodeError(typeName, err)
		}
		if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, jsonNull) {
			return nil, &DecodingError{Type: typeName, Field: "data", Err: ErrMissingField}
		}
		return decodeInto[T](typeName)(envelope.Data)
	}
}

// decodeList accepts either a bare JSON array or an object whose "data"
// member is an array. Element order is kept.
func decodeList[T any](typeName string) func([]byte) ([]T, error) {
	return func(body []byte) ([]T, error) {
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			var envelope struct {
				Data json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(trimmed, &envelope); err != nil {
				return nil, wrapDecodeError(typeName, err)
			}
			if len(envelope.Data) == 0 {
				return nil, &DecodingError{Type: typeName, Field: "data", Err: ErrMissingField}
			}
			trimmed = envelope.Data
		}
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, wrapDecodeError(typeName, err)
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
