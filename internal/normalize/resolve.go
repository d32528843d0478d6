package normalize

import "strings"

// SanitizeName converts a raw metric or workout name to snake_case: lowercased,
// with spaces and hyphens replaced by underscores.
func SanitizeName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// EntityID resolves a raw metric name to its entity id. Unmapped names get a
// deterministic fallback derived from the sanitized name.
func EntityID(rawName string) string {
	sanitized := SanitizeName(rawName)
	if id, ok := metricMapping[sanitized]; ok {
		return id
	}
	return "applehealth_" + sanitized
}

// UnitString maps a raw unit string to its canonical form, returning the input
// unchanged when no mapping exists.
func UnitString(units string) string {
	if mapped, ok := unitMapping[units]; ok {
		return mapped
	}
	return units
}

// ConvertUnits converts a value between units. Only the pairs below change the
// value; any other combination returns it unchanged.
func ConvertUnits(value float64, from, to string) float64 {
	if from == "kcal" && to == "kJ" {
		return value * 4.184
	}
	if from == "lb" && to == "kg" {
		return value * 0.453592
	}
	return value
}
