// Package lifecycle holds shared constants for startup and shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as the startup DB ping and
// the graceful HTTP shutdown.
const DefaultTimeout = 10 * time.Second
