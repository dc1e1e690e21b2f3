// Package commands contains business operations that modify order state.
// It implements the command side of the CQRS split: checkout, status
// advancement, explicit status updates, and staff assignment.
//
// All commands follow a consistent pattern: a constructor-guarded command
// value, validation, and a handler that loads the latest snapshot from the
// order store, applies the domain mutation, and writes the result back.
// Handlers never retry — every failure is surfaced synchronously to the
// caller.
package commands
