// Package delivery contains the Delivery aggregate: the unit of work moved
// from a pickup point to a dropoff point by a rider.
//
// The aggregate owns the lifecycle state machine (pending through delivered
// or cancelled), the fare breakdown computed at creation, the assignment
// state used by the rider-matching protocol (preferred riders, rejections,
// selection window), the append-only tracking log, and the write-once
// post-completion ratings.
//
// All mutation goes through the aggregate's methods; the transition table in
// status.go is the single authority on which lifecycle moves are legal.
// Time is always passed in by the caller so the state machine never reads
// the wall clock itself.
package delivery
