package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dreamplanner/inputguard/pkg/sanitizer"
)

// Field is a named form value.
type Field struct {
	Name  string
	Value sanitizer.Input
}

// F builds a Field from any value.
func F(name string, value any) Field {
	return Field{Name: name, Value: sanitizer.InputOf(value)}
}

// Fields is an ordered mapping of field name to value.
type Fields []Field

// UnmarshalJSON decodes a JSON object keeping its key order. A repeated key
// keeps its first position and its last value.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	out := make(Fields, 0)
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return ErrNotObject
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}

		if i, seen := index[name]; seen {
			out[i].Value = sanitizer.InputOf(value)
			continue
		}
		index[name] = len(out)
		out = append(out, F(name, value))
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = out
	return nil
}

// IsBlank reports whether in is missing or text that is empty after trimming.
// Numbers, booleans and objects are never blank.
func IsBlank(in sanitizer.Input) bool {
	if in.IsMissing() {
		return true
	}
	s, ok := in.AsText()
	return ok && strings.TrimSpace(s) == ""
}

// ValidateRequired returns the names of blank fields in input order. The
// result is empty, never nil, when every field is present.
func ValidateRequired(fields Fields) []string {
	missing := make([]string, 0)
	for _, f := range fields {
		if IsBlank(f.Value) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
