package shipment

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment is a courier delivery tracked from submission to delivery.
//
// Invariants:
//   - id is generated at creation and never changes
//   - weight is finite and non-negative
//   - category is Local or International
//   - status starts InTransit and moves to Delivered exactly once
//
// Cost is not stored; it is recomputed from category and weight.
type Shipment struct {
	id       kernel.UUID
	sender   string
	receiver string
	address  string
	weight   float64
	category Category
	status   Status

	isConstructed bool
}

// NewShipment creates a shipment in InTransit status, the state it holds
// while its delivery worker runs.
//
// Example:
//
//	s, err := shipment.NewShipment(kernel.NewUUID(), "A", "B", "1 Main St", 2.0, shipment.Local)
//	if err != nil {
//	    return err
//	}
//	s.Cost() // 10.0
func NewShipment(
	id kernel.UUID,
	sender, receiver, address string,
	weight float64,
	category Category,
) (*Shipment, error) {
	s := &Shipment{
		sender:        sender,
		receiver:      receiver,
		address:       address,
		status:        InTransit,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setWeight(weight),
		s.setCategory(category),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment read back from storage with its
// persisted status.
func RestoreShipment(
	id kernel.UUID,
	sender, receiver, address string,
	weight float64,
	category Category,
	status Status,
) (*Shipment, error) {
	s, err := NewShipment(id, sender, receiver, address, weight, category)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) Sender() string {
	return s.sender
}

func (s *Shipment) Receiver() string {
	return s.receiver
}

func (s *Shipment) Address() string {
	return s.address
}

func (s *Shipment) Weight() float64 {
	return s.weight
}

func (s *Shipment) Category() Category {
	return s.category
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) Cost() float64 {
	return Cost(s.category, s.weight)
}

// Deliver flips the status from InTransit to Delivered. A second call fails.
func (s *Shipment) Deliver() error {
	next, err := s.status.Deliver()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	s.weight = normalizeWeight(weight)
	return nil
}

func (s *Shipment) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	s.category = category
	return nil
}
