package normalize

import "github.com/meltforce/healthsink/internal/models"

// MetricPoints converts exported metrics into points, in input order. A single
// entry can produce several points: the primary qty, one point per heart-rate
// aggregate present, and one per sleep stage present — the checks are
// independent and all applicable ones fire.
//
// A non-numeric value where a number is required returns a *ValueError and
// discards the batch; there is no partial success at this layer.
func (e *Engine) MetricPoints(metrics []models.Metric) ([]Point, error) {
	var points []Point

	for _, m := range metrics {
		name := m.Name
		if name == "" {
			name = "unknown"
		}
		entityID := EntityID(name)
		unitStr := UnitString(m.Units)

		for _, entry := range m.Data {
			ts := e.parseDate(stringField(entry, "date"))

			// Standard qty field
			if v, ok := entry["qty"]; ok {
				value, err := numeric(name, "qty", v)
				if err != nil {
					return nil, err
				}
				unit := unitStr
				if m.Units == "kcal" {
					value = ConvertUnits(value, "kcal", "kJ")
					unit = "kJ"
				}
				points = append(points, newPoint(entityID, value, unit, ts))
			}

			// Heart rate aggregates, suffixed off the metric's own entity id
			for _, f := range heartRateFields {
				if v, ok := entry[f.key]; ok {
					value, err := numeric(name, f.key, v)
					if err != nil {
						return nil, err
					}
					points = append(points, newPoint(entityID+"_"+f.suffix, value, "bpm", ts))
				}
			}

			// Sleep stages get their own fixed entity ids regardless of the
			// metric name they arrived under
			for _, f := range sleepFields {
				if v, ok := entry[f.key]; ok {
					value, err := numeric(name, f.key, v)
					if err != nil {
						return nil, err
					}
					points = append(points, newPoint("applehealth_sleep_analysis_"+f.suffix, value, "min", ts))
				}
			}
		}
	}

	return points, nil
}

func stringField(entry models.Entry, key string) string {
	s, _ := entry[key].(string)
	return s
}
