// Package delivery defines the contract every transport (HTTP, workers)
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving external traffic.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
