package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueError reports a non-numeric value in a field that must be numeric.
// It aborts the whole batch for the invocation that hit it; nothing in this
// package recovers from it.
type ValueError struct {
	Metric string
	Field  string
	Value  any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("metric %q: field %q: non-numeric value %v", e.Metric, e.Field, e.Value)
}

// numeric coerces a decoded JSON value to float64. JSON numbers and numeric
// strings are accepted; everything else is a *ValueError.
func numeric(metric, field string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &ValueError{Metric: metric, Field: field, Value: v}
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, &ValueError{Metric: metric, Field: field, Value: v}
		}
		return f, nil
	default:
		return 0, &ValueError{Metric: metric, Field: field, Value: v}
	}
}
