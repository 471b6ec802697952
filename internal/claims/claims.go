// Package claims records which ticket types have already been registered.
package claims

import "context"

// Set is a durable set of claimed ticket-type ids.
type Set interface {
	Contains(ctx context.Context, id string) (bool, error)
	Add(ctx context.Context, id string) error
}
