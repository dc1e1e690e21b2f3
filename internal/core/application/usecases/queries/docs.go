// Package queries contains read-only operations over the order store.
// It implements the query side of the CQRS split: the admin board search,
// the grouped board view, the customer tracking view, and the dashboard
// aggregates.
//
// Handlers take a snapshot from the order store and derive results through
// the pure domain services; they never mutate anything. Responses are flat
// DTOs carrying the display metadata (labels, colors, progress) from the
// status pipeline so every view renders from the same authoritative table.
package queries
