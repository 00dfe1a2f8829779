package sanitizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains a numeric value to be within the specified range [min, max].
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// NumberOption bounds the result of SanitizeNumber.
type NumberOption func(*numberBounds)

type numberBounds struct {
	min, max       float64
	hasMin, hasMax bool
}

// Min sets the lower bound. It is also the fallback for unparsable input.
func Min(v float64) NumberOption {
	return func(b *numberBounds) {
		b.min, b.hasMin = v, true
	}
}

// Max sets the upper bound.
func Max(v float64) NumberOption {
	return func(b *numberBounds) {
		b.max, b.hasMax = v, true
	}
}

// Range sets both bounds.
func Range(min, max float64) NumberOption {
	return func(b *numberBounds) {
		Min(min)(b)
		Max(max)(b)
	}
}

// SanitizeNumber parses in as a number and clamps it to the configured bounds.
// Unparsable input yields the lower bound when one is set and 0 otherwise.
// Each bound is optional, so a value can be clamped on one side only.
func SanitizeNumber(in Input, opts ...NumberOption) float64 {
	var b numberBounds
	for _, opt := range opts {
		opt(&b)
	}

	n, ok := ParseNumber(in)
	if !ok {
		if b.hasMin {
			return b.min
		}
		return 0
	}

	if b.hasMin && n < b.min {
		return b.min
	}
	if b.hasMax && n > b.max {
		return b.max
	}
	return n
}

// ParseNumber extracts a number from text or numeric input. Text is trimmed
// before parsing; blank text, NaN, booleans and non-numeric values fail.
func ParseNumber(in Input) (float64, bool) {
	var n float64

	switch in.Kind() {
	case KindText:
		s := strings.TrimSpace(in.text)
		if s == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = v
	case KindOther:
		v, ok := numberOf(in.raw)
		if !ok {
			return 0, false
		}
		n = v
	default:
		return 0, false
	}

	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
