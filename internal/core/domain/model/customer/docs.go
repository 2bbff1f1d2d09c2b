// Package customer models the customers registered at the courier desk.
// Customers are value records: immutable after creation and identified only
// by their position in the store.
package customer
