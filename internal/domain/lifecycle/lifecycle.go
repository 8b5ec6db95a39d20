// Package lifecycle holds shared start/stop timing for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start pings and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second
