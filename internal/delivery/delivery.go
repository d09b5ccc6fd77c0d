// Package delivery holds the servers that expose the storefront. Each server is provided to
// fx in the "deliveries" group and started by the main process.
package delivery

import "context"

// Delivery is a server that blocks in Serve until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
