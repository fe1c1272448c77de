// Package kernel contains the shared value objects of the domain model:
// entity identifiers (UUID) and geographic coordinates (GeoPoint) with the
// great-circle distance used both for fare computation and proximity search.
//
// All kernel types are immutable and constructed through factory functions;
// zero values fail Validate.
package kernel
