package sanitizer

import (
	"bytes"
	"encoding/json"
)

// UnmarshalJSON classifies a decoded JSON value. null is missing; numbers are
// kept as json.Number.
func (in *Input) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*in = InputOf(v)
	return nil
}

// MarshalJSON writes missing input as null and everything else as its raw value.
func (in Input) MarshalJSON() ([]byte, error) {
	if in.kind == KindMissing {
		return []byte("null"), nil
	}
	return json.Marshal(in.raw)
}
