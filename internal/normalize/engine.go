// Package normalize converts Health Auto Export metrics and workouts into
// canonical time-series points: one measurement per entity id, tagged with the
// domain, carrying a numeric value and a unit string. It is the pure core of
// the service — no I/O beyond logging, no state shared between invocations.
package normalize

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/meltforce/healthsink/internal/models"
)

// dateLayouts are tried in order when parsing entry dates and workout starts.
var dateLayouts = []string{
	models.HAETimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	models.HAEDateOnlyLayout,
}

// Engine builds points from decoded export payloads. Safe for concurrent use;
// each call only reads the immutable lookup tables.
type Engine struct {
	log *slog.Logger
	now func() time.Time

	dateFallbacks atomic.Int64
}

// New creates an Engine using the wall clock for the unparseable-date fallback.
func New(log *slog.Logger) *Engine {
	return NewWithClock(log, time.Now)
}

// NewWithClock creates an Engine with an injected clock. Tests use this to pin
// the fallback timestamp.
func NewWithClock(log *slog.Logger, now func() time.Time) *Engine {
	return &Engine{log: log, now: now}
}

// DateFallbacks returns how many times an unparseable date was replaced with
// the current time since the engine was created. A climbing value means the
// exporter is sending timestamps this service cannot read.
func (e *Engine) DateFallbacks() int64 {
	return e.dateFallbacks.Load()
}

// parseDate parses a free-form export date. On failure it logs a warning and
// substitutes the current instant rather than erroring; historical exports
// with broken timestamps still land, just at the wrong time. Results are
// truncated to whole seconds.
func (e *Engine) parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(time.Second)
		}
	}
	e.dateFallbacks.Add(1)
	e.log.Warn("failed to parse date, using current time", "date", s)
	return e.now().Truncate(time.Second)
}
