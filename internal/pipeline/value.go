package pipeline

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a numeric field that may be absent. The zero Value is absent,
// which keeps "no data" distinct from the number 0.
type Value struct {
	v     float64
	valid bool
}

// Some returns a present Value. NaN and infinities are treated as absent.
func Some(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{v: v, valid: true}
}

// None returns an absent Value.
func None() Value { return Value{} }

// Get returns the number and whether it is present.
func (v Value) Get() (float64, bool) { return v.v, v.valid }

// Valid reports whether the value is present.
func (v Value) Valid() bool { return v.valid }

// Or returns the number, or def when absent.
func (v Value) Or(def float64) float64 {
	if !v.valid {
		return def
	}
	return v.v
}

// MarshalJSON encodes an absent value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts numbers, null, and numeric strings. Any other
// string decodes as absent so a stray "n/a" degrades instead of failing
// the whole payload. Objects, arrays and booleans are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*v = Value{}
			return nil
		}
		*v = Some(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Some(f)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.valid {
		return nil, nil
	}
	return v.v, nil
}

// mean averages the present values. It returns None when none are present.
func mean(values []Value) Value {
	sum, n := 0.0, 0
	for _, val := range values {
		if f, ok := val.Get(); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return None()
	}
	return Some(sum / float64(n))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
