package influx

import (
	"context"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/meltforce/healthsink/internal/normalize"
)

// WritePoints writes normalized points to the given bucket and org in one
// blocking call. Empty input is a no-op. Write errors are returned verbatim —
// no retry, no masking; the caller decides what a failed batch means.
func (c *Client) WritePoints(ctx context.Context, points []normalize.Point, bucket, org string) error {
	if len(points) == 0 {
		return nil
	}
	if c == nil || c.client == nil {
		return ErrNotConnected
	}

	writeAPI := c.client.WriteAPIBlocking(org, bucket)

	wps := make([]*write.Point, 0, len(points))
	for _, p := range points {
		wps = append(wps, toWritePoint(p))
	}
	return writeAPI.WritePoint(ctx, wps...)
}

// toWritePoint converts an engine point to the client library's point type.
// The engine already emits second-granularity timestamps; the client precision
// setting makes that explicit on the wire.
func toWritePoint(p normalize.Point) *write.Point {
	return write.NewPoint(p.Measurement, p.Tags, p.Fields, p.Time)
}
