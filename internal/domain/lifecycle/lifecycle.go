// Package lifecycle holds shared timing limits for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
