package numeric

import (
	"encoding/json"
	"strconv"
)

// Coerce converts a loosely typed JSON value to a float64. Numbers pass
// through, numeric strings are parsed, everything else (including nil and
// unparsable strings) coerces to zero.
func Coerce(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
