package outcome

import (
	"time"

	"github.com/google/uuid"
)

// None is the payload type of outcomes that carry no value.
type None struct{}

// Bare is an outcome viewed without its payload. Every *Outcome[T] is a Bare,
// so outcomes of any payload type can be projected onto each other.
type Bare interface {
	// Id identifies the logical operation the outcome describes
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
	// Messages returns the shared message list
	Messages() *Messages
	// StatusCode returns the code and whether one was set
	StatusCode() (int, bool)
	// Keys returns the metadata map
	Keys() map[string]any
}

var _ Bare = (*Outcome[None])(nil)

// KeyAs reads key from the metadata of b and casts it to V.
// It reports false when b is nil, the key is missing or the value is not a V.
func KeyAs[V any](b Bare, key string) (V, bool) {
	var zero V
	if IsNil(b) {
		return zero, false
	}

	raw, ok := b.Keys()[key]
	if !ok {
		return zero, false
	}

	v, ok := raw.(V)
	if !ok {
		return zero, false
	}
	return v, true
}
