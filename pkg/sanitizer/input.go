package sanitizer

import "reflect"

// Kind classifies a loosely typed Input.
type Kind uint8

const (
	// KindMissing is a null or absent value.
	KindMissing Kind = iota
	// KindText is a string value.
	KindText
	// KindOther is any non-null, non-string value (numbers, booleans, objects, arrays).
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// Input is a form value as received from a client, before its type is known.
// The zero value is a missing input.
type Input struct {
	kind Kind
	text string
	raw  any
}

// Missing is the Input for null or absent values.
var Missing = Input{}

// Text wraps a string as Input.
func Text(s string) Input {
	return Input{kind: KindText, text: s, raw: s}
}

// InputOf classifies an arbitrary value. nil and nil pointers are missing,
// strings and non-nil *string are text, everything else is other.
func InputOf(v any) Input {
	switch val := v.(type) {
	case nil:
		return Missing
	case Input:
		return val
	case string:
		return Text(val)
	case *string:
		if val == nil {
			return Missing
		}
		return Text(*val)
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Missing
	}

	return Input{kind: KindOther, raw: v}
}

// Kind reports which variant the input holds.
func (in Input) Kind() Kind {
	return in.kind
}

// IsMissing reports whether the input is null or absent.
func (in Input) IsMissing() bool {
	return in.kind == KindMissing
}

// AsText returns the string held by a text input.
func (in Input) AsText() (string, bool) {
	return in.text, in.kind == KindText
}

// Raw returns the original value.
func (in Input) Raw() any {
	return in.raw
}

// Sanitize applies fn to a text input and returns "" for every other kind.
func (in Input) Sanitize(fn func(string) string) string {
	if in.kind != KindText {
		return ""
	}
	return fn(in.text)
}

// Check applies fn to a text input and returns false for every other kind.
func (in Input) Check(fn func(string) bool) bool {
	if in.kind != KindText {
		return false
	}
	return fn(in.text)
}
