// Package optional provides a container for a value that may or may not be present,
// avoiding nil sentinels and ok-flag pairs in calling code.
//
// This package generalizes the Option interface modeled after github.com/sagikazarmark/go-option.
package optional

import (
	"context"
	"fmt"
)

// Optional wraps a single value of type T.
// It either contains a value or it does not.
//
// The zero value of Optional is a valid, empty container.
//
// Optional is a plain in-memory value holder with no internal synchronization:
// calling OrElse on the same container from multiple goroutines is a data race.
// A container is expected to have a single logical owner.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns a new Optional containing value.
//
// Any value of T counts as present, including zero values like 0, "" and false.
func Of[T any](value T) *Optional[T] {
	return &Optional[T]{
		value:   value,
		present: true,
	}
}

// Empty returns a new Optional containing no value.
func Empty[T any]() *Optional[T] {
	return &Optional[T]{}
}

// FromPtr returns a new Optional from a nilable reference:
// an empty container when ptr is nil, otherwise a container holding *ptr.
func FromPtr[T any](ptr *T) *Optional[T] {
	if ptr == nil {
		return Empty[T]()
	}

	return Of(*ptr)
}

// IsPresent returns true if the Optional contains a value.
func (o *Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if the Optional contains no value.
func (o *Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value.
//
// It returns an AbsentValueError when the Optional is empty:
// callers are expected to check IsPresent or substitute a default with OrElse first.
func (o *Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T

		return zero, &AbsentValueError{}
	}

	return o.value, nil
}

// MustGet returns the contained value and panics with an AbsentValueError when the Optional is empty.
//
// Use it only when presence has already been established.
func (o *Optional[T]) MustGet() T {
	if !o.present {
		panic(&AbsentValueError{})
	}

	return o.value
}

// OrElse substitutes defaultValue for a missing value.
//
// When the Optional is empty, it stores defaultValue in place and becomes present.
// When the Optional already contains a value, it does nothing.
// Either way it returns the receiver, so a Get chained after OrElse always succeeds.
func (o *Optional[T]) OrElse(defaultValue T) *Optional[T] {
	if !o.present {
		o.value = defaultValue
		o.present = true
	}

	return o
}

// IfPresent invokes action with the contained value if the Optional contains one.
// It does nothing when the Optional is empty.
//
// Panics raised by action propagate to the caller unmodified.
func (o *Optional[T]) IfPresent(action func(T)) {
	if o.present {
		action(o.value)
	}
}

// IfPresentContext invokes action with the contained value if the Optional contains one,
// blocking until action returns, and returns action's error unmodified.
// It returns nil immediately when the Optional is empty.
//
// The context is passed through to action untouched;
// once action is running the container offers no way to cancel it.
func (o *Optional[T]) IfPresentContext(ctx context.Context, action func(context.Context, T) error) error {
	if !o.present {
		return nil
	}

	return action(ctx, o.value)
}

// IsPresentAnd returns true if the Optional contains a value and predicate returns true for it.
//
// The predicate is never invoked on an empty Optional.
func (o *Optional[T]) IsPresentAnd(predicate func(T) bool) bool {
	return o.present && predicate(o.value)
}

// Ptr returns a pointer to a copy of the contained value, or nil when the Optional is empty.
//
// It is the inverse of FromPtr. The returned pointer never aliases the container's own storage.
func (o *Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}

	value := o.value

	return &value
}

// String implements the fmt.Stringer interface.
func (o Optional[T]) String() string {
	if !o.present {
		return "Empty"
	}

	return fmt.Sprintf("Of(%v)", o.value)
}

// Equal returns true if both Optionals are empty or both contain values equal according to eq.
func Equal[T any](a *Optional[T], b *Optional[T], eq func(T, T) bool) bool {
	if a.IsEmpty() {
		return b.IsEmpty()
	}

	if b.IsEmpty() {
		return false
	}

	return eq(a.value, b.value)
}
