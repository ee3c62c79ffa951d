// Package services provides domain services that work across aggregates or apply
// rules that belong to no single entity.
//
// The package includes:
//   - StopSequencer: applies a provider's waypoint order to submitted route stops
package services
