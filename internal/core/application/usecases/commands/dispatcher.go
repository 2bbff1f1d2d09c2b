// Package commands contains business operations that modify the record store.
// Every command follows the same pattern: a guarded constructor that
// validates input, and a handler that re-validates and applies it.
package commands

import (
	"context"

	"courier/internal/core/domain/model/shipment"
)

// DeliveryDispatcher starts the asynchronous delivery of a freshly submitted
// shipment. Dispatch returns immediately; the shipment reaches the store
// only once its delivery completes.
type DeliveryDispatcher interface {
	Dispatch(ctx context.Context, s *shipment.Shipment)
}
