// Package format renders message lists into a single string.
//
// It is shared by outcome.Outcome and any other message-bearing type that
// wants the same output:
// - ToMultiLine: append a delimiter after every message (a space when no
//   delimiter is given)
package format
