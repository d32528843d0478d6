package models

import (
	"encoding/json"
	"fmt"
)

// Time layouts emitted by Health Auto Export. The full datetime layout is what
// metric data points and workouts carry; date-only appears in aggregated sleep
// exports.
const (
	HAETimeLayout     = "2006-01-02 15:04:05 -0700"
	HAEDateOnlyLayout = "2006-01-02"
)

// Payload is the top-level ingest body. HAE's REST export wraps everything in
// a "data" object, but older exports (and curl users) post the metrics and
// workouts arrays at the top level. Both are accepted.
type Payload struct {
	Data Export `json:"data"`
}

// Export contains the arrays of health data.
type Export struct {
	Metrics  []Metric  `json:"metrics"`
	Workouts []Workout `json:"workouts"`
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	type wrapped Payload
	var w wrapped
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if len(w.Data.Metrics) > 0 || len(w.Data.Workouts) > 0 {
		*p = Payload(w)
		return nil
	}
	// Flat body: {metrics: [...], workouts: [...]}
	var flat Export
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	p.Data = flat
	return nil
}

// Metric is one exported metric: a name, a declared unit, and a list of data
// entries. Entries are open-ended — a single entry can carry a qty, the
// Min/Avg/Max heart rate aggregates, and sleep stage durations all at once,
// so they stay as decoded maps and the normalizer picks out what it knows.
type Metric struct {
	Name  string  `json:"name"`
	Units string  `json:"units"`
	Data  []Entry `json:"data"`
}

// Entry is a single metric data point with arbitrary fields.
type Entry map[string]any

// Workout is a workout record from the export. The numeric sub-fields appear
// either as bare numbers or as {"qty": N, "units": "..."} objects depending on
// the HAE version; Quantity absorbs both.
type Workout struct {
	Name               string    `json:"name"`
	Start              string    `json:"start"`
	Duration           *float64  `json:"duration,omitempty"`
	ActiveEnergyBurned *Quantity `json:"activeEnergyBurned,omitempty"`
	Distance           *Quantity `json:"distance,omitempty"`
}

// Quantity is a workout sub-metric that HAE serializes either as a bare
// number or as an object carrying a qty member. A present object without a
// qty member resolves to zero.
type Quantity struct {
	Qty float64
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		q.Qty = n
		return nil
	}
	var obj struct {
		Qty float64 `json:"qty"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("quantity: expected number or object with qty: %w", err)
	}
	q.Qty = obj.Qty
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Qty float64 `json:"qty"`
	}{q.Qty})
}
