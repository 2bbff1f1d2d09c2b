package shipment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status is the delivery state of a shipment.
//
// State transitions:
//
//	InTransit ──(delivery worker, after delay)──> Delivered
//
// Pending is part of the closed set but no workflow produces it today:
// submission creates shipments directly in InTransit.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	InTransit
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
	}
}

// Validate rejects Unknown and out-of-range values, e.g. a corrupt column
// read back from postgres.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Deliver transitions InTransit to Delivered. Any other source state,
// Delivered included, is rejected so the flip happens exactly once.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}
