// Package services provides domain services that coordinate business rules
// across multiple aggregates.
//
// The package includes:
//   - ProximityMatcher: finds the pending deliveries a rider can see and
//     accept, nearest pickup first
//
// Domain services hold logic that spans aggregates and therefore does not
// belong to any single aggregate root.
package services
