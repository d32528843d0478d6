package normalize

// Namespace prefixes every measurement name and is the value of the domain tag.
const Namespace = "hae"

// metricMapping maps sanitized Health Auto Export metric names to entity ids.
// Names not present here fall back to "applehealth_" + sanitized name.
var metricMapping = map[string]string{
	// Energy
	"active_energy":        "applehealth_active_energy",
	"active_energy_burned": "applehealth_active_energy",
	"basal_energy_burned":  "applehealth_basal_energy_burned",

	// Heart rate
	"heart_rate":         "applehealth_heart_rate",
	"resting_heart_rate": "applehealth_resting_heart_rate",

	// Body measurements
	"weight_body_mass":    "applehealth_weight_body_mass",
	"weight":              "applehealth_weight_body_mass",
	"body_mass":           "applehealth_weight_body_mass",
	"body_mass_index":     "applehealth_body_mass_index",
	"body_fat_percentage": "applehealth_body_fat_percentage",
	"lean_body_mass":      "applehealth_lean_body_mass",

	// Activity
	"step_count":               "applehealth_step_count",
	"steps":                    "applehealth_step_count",
	"flights_climbed":          "applehealth_flights_climbed",
	"walking_running_distance": "applehealth_walking_running_distance",
	"cycling_distance":         "applehealth_cycling_distance",

	// Sleep
	"sleep_analysis": "applehealth_sleep_analysis",

	// Blood values
	"blood_oxygen_saturation": "applehealth_blood_oxygen_saturation",
	"oxygen_saturation":       "applehealth_blood_oxygen_saturation",

	// Audio
	"headphone_audio_exposure": "applehealth_headphone_audio_exposure",

	// Walking metrics
	"walking_speed":                     "applehealth_walking_speed",
	"walking_step_length":               "applehealth_walking_step_length",
	"walking_asymmetry_percentage":      "applehealth_walking_asymmetry_percentage",
	"walking_double_support_percentage": "applehealth_walking_double_support_percentage",
}

// unitMapping maps raw unit strings to the canonical unit. Unknown units pass
// through unchanged.
var unitMapping = map[string]string{
	"kcal":      "kJ",
	"count":     "steps",
	"count/min": "bpm",
	"lb":        "kg",
}

// fieldSuffix pairs an entry field name with the entity-id suffix it maps to.
// Tables below are slices, not maps, so emission order is fixed.
type fieldSuffix struct {
	key    string
	suffix string
}

// heartRateFields are the aggregate fields a heart_rate entry can carry.
var heartRateFields = []fieldSuffix{
	{"Min", "min"},
	{"Avg", "avg"},
	{"Max", "max"},
}

// sleepFields are the per-stage duration fields of a sleep_analysis entry.
var sleepFields = []fieldSuffix{
	{"asleep", "totalsleep"},
	{"inBed", "inbed"},
	{"deep", "deep"},
	{"rem", "rem"},
	{"core", "core"},
	{"awake", "awake"},
}
