// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-running components.
const DefaultTimeout = 10 * time.Second
