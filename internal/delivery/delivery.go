// Package delivery defines the contract shared by every transport the binaries serve.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, push worker, queue consumer).
// Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
