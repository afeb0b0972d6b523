// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a long-running transport (e.g., the HTTP server) started by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
