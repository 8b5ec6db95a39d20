// Package delivery contains the inbound surfaces of the notifier.
package delivery

import "context"

// Delivery is a long-running inbound server started by the binaries.
type Delivery interface {
	Serve(ctx context.Context) error
}
