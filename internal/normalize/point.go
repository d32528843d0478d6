package normalize

import "time"

// Point is one normalized, tagged, timestamped record bound for the
// time-series store. Tags always carry the domain and the entity id; fields
// always carry the numeric value and its unit string.
type Point struct {
	Measurement string
	Tags        map[string]string
	Fields      map[string]any
	Time        time.Time
}

func newPoint(entityID string, value float64, unit string, ts time.Time) Point {
	return Point{
		Measurement: Namespace + "." + entityID,
		Tags: map[string]string{
			"domain":    Namespace,
			"entity_id": entityID,
		},
		Fields: map[string]any{
			"value":                   value,
			"unit_of_measurement_str": unit,
		},
		Time: ts,
	}
}
