// Package lifecycle holds shared constants for process start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of long-lived
// resources such as the database pool and the HTTP server.
const DefaultTimeout = 10 * time.Second
