package reactive

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Values holds the current value of each control, keyed by control ID, as
// sent by the browser.
type Values map[string]json.RawMessage

// Has reports whether control id carries a settled value. JSON null counts
// as unsettled.
func (v Values) Has(id string) bool {
	raw, ok := v[id]
	if !ok {
		return false
	}
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// Decode unmarshals the value of control id into dst.
func (v Values) Decode(id string, dst any) error {
	if !v.Has(id) {
		return fmt.Errorf("%w: %s has no value", ErrUnsettled, id)
	}
	if err := json.Unmarshal(v[id], dst); err != nil {
		return fmt.Errorf("decoding value of %s: %w", id, err)
	}
	return nil
}

// String returns the value of control id as a string.
func (v Values) String(id string) (string, error) {
	var s string
	err := v.Decode(id, &s)
	return s, err
}

// Float64Pair returns the value of control id as a two-element number array,
// the shape of a range slider value.
func (v Values) Float64Pair(id string) ([2]float64, error) {
	var pair []float64
	if err := v.Decode(id, &pair); err != nil {
		return [2]float64{}, err
	}
	if len(pair) != 2 {
		return [2]float64{}, fmt.Errorf("decoding value of %s: want 2 numbers, got %d", id, len(pair))
	}
	return [2]float64{pair[0], pair[1]}, nil
}

// Set stores value as the JSON value of control id.
func (v Values) Set(id string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value of %s: %w", id, err)
	}
	v[id] = raw
	return nil
}
