package outcome

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcomes/pkg/outcome/format"
)

// Outcome is the result of one logical operation. Only the payload can be
// changed after construction.
type Outcome[T any] struct {
	id         uuid.UUID
	createdAt  time.Time
	value      T
	isSuccess  bool
	messages   *Messages
	statusCode *int
	keys       map[string]any
}

// Create returns a new outcome with the given success flag. Without options
// it has no messages, the zero value, no status code and no keys.
func Create[T any](success bool, opts ...Option) *Outcome[T] {
	s := settings{}
	for _, o := range opts {
		o(&s)
	}

	keys := s.keys
	if keys == nil {
		keys = make(map[string]any)
	}

	return &Outcome[T]{
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
		isSuccess:  success,
		messages:   newMessages(s.messages...),
		statusCode: s.statusCode,
		keys:       keys,
	}
}

// FromTyped derives an outcome from from, payload included. The message list
// and the key map are shared with from, not copied.
func FromTyped[T any](from *Outcome[T]) *Outcome[T] {
	if from == nil {
		return Create[T](false)
	}

	return &Outcome[T]{
		id:         from.id,
		createdAt:  from.createdAt,
		value:      from.value,
		isSuccess:  from.isSuccess,
		messages:   from.Messages(),
		statusCode: copyCode(from.StatusCode()),
		keys:       from.Keys(),
	}
}

// FromUntyped derives an outcome from a Bare source. The payload is always
// the zero value of T. The message list and the key map are shared with from.
func FromUntyped[T any](from Bare) *Outcome[T] {
	if IsNil(from) {
		return Create[T](false)
	}

	return &Outcome[T]{
		id:         from.Id(),
		createdAt:  from.CreatedAt(),
		isSuccess:  from.IsSuccess(),
		messages:   from.Messages(),
		statusCode: copyCode(from.StatusCode()),
		keys:       from.Keys(),
	}
}

// Clone returns a copy that shares nothing mutable with o. Key values are
// copied shallowly.
func (o *Outcome[T]) Clone() *Outcome[T] {
	return &Outcome[T]{
		id:         o.id,
		createdAt:  o.createdAt,
		value:      o.value,
		isSuccess:  o.isSuccess,
		messages:   o.Messages().clone(),
		statusCode: copyCode(o.StatusCode()),
		keys:       maps.Clone(o.Keys()),
	}
}

func (o *Outcome[T]) Id() uuid.UUID {
	return o.id
}

func (o *Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o *Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

func (o *Outcome[T]) Value() T {
	return o.value
}

// SetValue attaches a payload after construction.
func (o *Outcome[T]) SetValue(v T) {
	o.value = v
}

func (o *Outcome[T]) Messages() *Messages {
	if o.messages == nil {
		o.messages = newMessages()
	}
	return o.messages
}

// AddMessage appends to the message list, which derived outcomes may share.
func (o *Outcome[T]) AddMessage(msgs ...string) *Outcome[T] {
	o.Messages().Add(msgs...)
	return o
}

func (o *Outcome[T]) StatusCode() (int, bool) {
	if o.statusCode == nil {
		return 0, false
	}
	return *o.statusCode, true
}

func (o *Outcome[T]) HasStatusCode() bool {
	return o.statusCode != nil
}

// Keys returns the metadata map itself; callers cast values on read (see KeyAs).
func (o *Outcome[T]) Keys() map[string]any {
	if o.keys == nil {
		o.keys = make(map[string]any)
	}
	return o.keys
}

// Render joins the messages, delimiter following each one. An empty
// delimiter means a single space.
func (o *Outcome[T]) Render(delimiter string) string {
	return format.ToMultiLine(delimiter, o.Messages().lines)
}

func (o *Outcome[T]) String() string {
	return o.Render("")
}

func copyCode(code int, ok bool) *int {
	if !ok {
		return nil
	}
	return &code
}
