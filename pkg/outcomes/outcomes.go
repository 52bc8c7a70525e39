package outcomes

import (
	"fmt"

	"github.com/ib-77/outcomes/pkg/outcome"
)

// Builder collects what a new outcome carries. It is not safe for concurrent use.
type Builder[T any] struct {
	success  bool
	value    T
	hasValue bool
	opts     []outcome.Option
}

func Success[T any]() *Builder[T] {
	return &Builder[T]{success: true}
}

func Failure[T any]() *Builder[T] {
	return &Builder[T]{success: false}
}

func Ok() *Builder[outcome.None] {
	return Success[outcome.None]()
}

func Fail() *Builder[outcome.None] {
	return Failure[outcome.None]()
}

func (b *Builder[T]) WithMessage(msgs ...string) *Builder[T] {
	b.opts = append(b.opts, outcome.WithMessages(msgs...))
	return b
}

func (b *Builder[T]) WithMessageFormat(format string, args ...any) *Builder[T] {
	return b.WithMessage(fmt.Sprintf(format, args...))
}

func (b *Builder[T]) WithValue(v T) *Builder[T] {
	b.value = v
	b.hasValue = true
	return b
}

func (b *Builder[T]) WithStatusCode(code int) *Builder[T] {
	b.opts = append(b.opts, outcome.WithStatusCode(code))
	return b
}

func (b *Builder[T]) WithKey(key string, value any) *Builder[T] {
	b.opts = append(b.opts, outcome.WithKey(key, value))
	return b
}

// WithError adds one message per error joined into err. A nil err adds nothing.
func (b *Builder[T]) WithError(err error) *Builder[T] {
	return b.WithMessage(outcome.ErrorLines(err)...)
}

// Outcome builds a new outcome. Each call returns a distinct instance.
func (b *Builder[T]) Outcome() *outcome.Outcome[T] {
	o := outcome.Create[T](b.success, b.opts...)
	if b.hasValue {
		o.SetValue(b.value)
	}
	return o
}

// FromError returns a failure with the messages of err, or a plain success
// when err is nil.
func FromError[T any](err error) *outcome.Outcome[T] {
	if outcome.IsNil(err) {
		return Success[T]().Outcome()
	}
	return Failure[T]().WithError(err).Outcome()
}

// From projects any outcome onto payload type T; the value is not carried over.
func From[T any](src outcome.Bare) *outcome.Outcome[T] {
	return outcome.FromUntyped[T](src)
}

func FromTyped[T any](src *outcome.Outcome[T]) *outcome.Outcome[T] {
	return outcome.FromTyped(src)
}
