// Package delivery defines the entry points that drive the use cases.
package delivery

import "context"

// Delivery is a long-running process started by the application, such as the API server or the expiry sweeper.
type Delivery interface {
	Serve(ctx context.Context) error
}
