// Package lifecycle holds shared timeouts for component start and stop.
package lifecycle

import (
	"time"
)

const (
	// DefaultTimeout bounds graceful start/stop of infrastructure components.
	DefaultTimeout = 10 * time.Second

	// SchedulerStopTimeout bounds the wait for the background scan loop to
	// drain before stop proceeds regardless.
	SchedulerStopTimeout = 5 * time.Second
)
