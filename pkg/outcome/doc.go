// Package outcome defines Outcome[T], a result value that carries a success
// flag, ordered messages, a payload, an optional status code and a metadata
// bag. Code returns an Outcome instead of an error or an ad-hoc tuple and the
// caller branches on IsSuccess/IsFailure.
//
// Highlights:
// - Create: a fresh outcome, optionally populated with Option values
// - FromTyped: derive from an Outcome[T], payload included
// - FromUntyped: derive from any Bare outcome, payload reset to the zero value
// - Render/String: join messages via the format package
// - Clone: deep copy that breaks message/key sharing
// - KeyAs: typed read of a metadata value
//
// Derived outcomes share the message list and the key map with their source.
// Adding a message to one is visible through the other, and concurrent
// mutation of shared state must be synchronized by the caller.
package outcome
