package normalize

import "github.com/meltforce/healthsink/internal/models"

// WorkoutPoints converts workouts into points, up to three per workout:
// duration (seconds to minutes), active energy (kcal to kJ), and distance
// (km, unchanged). Workout names are sanitized but never resolved through the
// metric table — the entity id is always synthesized as
// applehealth_workout_<name>_<suffix>. A workout carrying none of the three
// fields yields no points.
func (e *Engine) WorkoutPoints(workouts []models.Workout) ([]Point, error) {
	var points []Point

	for _, w := range workouts {
		name := w.Name
		if name == "" {
			name = "unknown"
		}
		sanitized := SanitizeName(name)
		ts := e.parseDate(w.Start)

		if w.Duration != nil {
			entityID := "applehealth_workout_" + sanitized + "_duration"
			points = append(points, newPoint(entityID, *w.Duration/60.0, "min", ts))
		}

		if w.ActiveEnergyBurned != nil {
			entityID := "applehealth_workout_" + sanitized + "_energy"
			value := ConvertUnits(w.ActiveEnergyBurned.Qty, "kcal", "kJ")
			points = append(points, newPoint(entityID, value, "kJ", ts))
		}

		if w.Distance != nil {
			entityID := "applehealth_workout_" + sanitized + "_distance"
			points = append(points, newPoint(entityID, w.Distance.Qty, "km", ts))
		}
	}

	return points, nil
}
