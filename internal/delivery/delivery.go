// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP today). All
// deliveries are collected into a value group and started together.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
