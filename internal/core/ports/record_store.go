package ports

// RecordStore owns the shipment, customer and staff collections. It is built
// once in the composition root and injected into every handler; nothing
// else holds the collections.
//
// Implementations must make each repository safe for concurrent use: many
// delivery workers append shipments while queries read.
type RecordStore interface {
	ShipmentRepository() ShipmentRepository
	CustomerRepository() CustomerRepository
	StaffRepository() StaffRepository
}
