// Package lifecycle holds shared constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks and detached store writes.
const DefaultTimeout = 10 * time.Second
