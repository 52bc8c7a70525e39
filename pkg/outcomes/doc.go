// Package outcomes is the factory layer for outcome.Outcome[T]. Callers build
// outcomes fluently instead of assembling options by hand.
//
// Highlights:
// - Success/Failure: start a Builder[T]; Ok/Fail for outcomes without a value
// - Builder: WithMessage, WithMessageFormat, WithValue, WithStatusCode,
//   WithKey, WithError, then Outcome
// - FromError: failure carrying one message per joined error
// - From/FromTyped: project an existing outcome onto another payload type
package outcomes
