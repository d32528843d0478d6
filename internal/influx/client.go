package influx

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"github.com/meltforce/healthsink/internal/config"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultPingTimeout    = 5 * time.Second
)

// Client wraps the InfluxDB v2 client. Writes are blocking and synchronous —
// one write per ingest invocation, with the error surfaced to the caller
// rather than batched away.
//
// All methods are safe for concurrent use.
type Client struct {
	client influxdb2.Client
	cfg    config.InfluxConfig
}

// Connect creates the client with token auth and verifies connectivity with a
// ping before returning. Points are written with second precision.
func Connect(cfg config.InfluxConfig) (*Client, error) {
	client := influxdb2.NewClientWithOptions(
		cfg.URL,
		cfg.Token,
		influxdb2.DefaultOptions().SetPrecision(time.Second),
	)

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	healthy, err := client.Ping(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping failed: %w", ErrConnectionFailed, err)
	}
	if !healthy {
		client.Close()
		return nil, fmt.Errorf("%w: server not healthy", ErrConnectionFailed)
	}

	return &Client{client: client, cfg: cfg}, nil
}

// Bucket returns the configured default bucket.
func (c *Client) Bucket() string { return c.cfg.Bucket }

// Org returns the configured default org.
func (c *Client) Org() string { return c.cfg.Org }

// HealthCheck verifies the connection is alive.
func (c *Client) HealthCheck(ctx context.Context) error {
	if c == nil || c.client == nil {
		return ErrNotConnected
	}

	checkCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	healthy, err := c.client.Ping(checkCtx)
	if err != nil {
		return fmt.Errorf("influxdb health check failed: %w", err)
	}
	if !healthy {
		return fmt.Errorf("influxdb health check failed: server not healthy")
	}
	return nil
}

// Close shuts down the underlying client. Safe to call once at shutdown;
// blocking writes have nothing to flush.
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
