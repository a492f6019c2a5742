// Package lifecycle holds the shared timeouts used by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook (pings, drains, shutdowns).
const DefaultTimeout = 10 * time.Second
