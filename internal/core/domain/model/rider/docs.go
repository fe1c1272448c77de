// Package rider holds the courier profile aggregate: availability,
// position, rating ledger, and earnings counters.
package rider
