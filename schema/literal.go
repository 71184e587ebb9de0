package schema

import (
	"math"
	"strconv"
	"strings"
)

// FormatLiteral renders v as Go source text for a value of column type t.
// Output is canonical: the same value always produces the same text, and
// parsing the text back yields the same value.
//
// Floats use the shortest round-trip form and keep a ".0" on integral values
// so the literal stays a floating constant. Values a constant cannot express
// render as calls into the math package, converted for float32 columns.
func FormatLiteral(t ColumnType, v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}

	// Zero value keeps the emitter total for a nil cell.
	switch {
	case t.IsTextual():
		return `""`
	case t == BoolType:
		return "false"
	case t.IsFloat():
		return "0.0"
	default:
		return "0"
	}
}

func formatFloat(f float64, bitSize int) string {
	var call string
	switch {
	case math.IsNaN(f):
		call = "math.NaN()"
	case math.IsInf(f, 1):
		call = "math.Inf(1)"
	case math.IsInf(f, -1):
		call = "math.Inf(-1)"
	case f == 0 && math.Signbit(f):
		call = "math.Copysign(0, -1)"
	}
	if call != "" {
		if bitSize == 32 {
			return "float32(" + call + ")"
		}
		return call
	}

	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
