package influx

import "errors"

var (
	// ErrNotConnected indicates the client was never connected or already closed.
	ErrNotConnected = errors.New("influx: not connected")

	// ErrConnectionFailed indicates the initial connection attempt failed.
	ErrConnectionFailed = errors.New("influx: connection failed")
)
