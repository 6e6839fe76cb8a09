// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a transport surface (HTTP server) started by the application
// lifecycle.
type Delivery interface {
	// Serve blocks, accepting traffic until the process shuts down.
	Serve(ctx context.Context) error
}
