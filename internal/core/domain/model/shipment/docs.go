// Package shipment models courier shipments: the Shipment aggregate, its
// delivery Status state machine, and the Category cost policy.
//
// Key business rules:
//   - Shipments are created InTransit and become Delivered exactly once
//   - Weight must be a finite, non-negative number
//   - Cost = weight * rate, with rates Local 5.0 and International 10.0
package shipment
