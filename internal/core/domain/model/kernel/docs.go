// Package kernel holds domain primitives shared by the courier aggregates.
//
// Today that is UUID, the identifier value object for shipments. Primitives
// here are immutable and safe for concurrent use.
package kernel
