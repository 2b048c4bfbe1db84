package query

import (
	"fmt"
	"iter"
)

// Seq is a lazy, composable query over elements of type T. Building a Seq
// does no work; it is evaluated by ranging over Iter or by a terminal
// operation. Errors travel with the elements and end the evaluation.
//
// The zero Seq is empty.
type Seq[T any] struct {
	src        iter.Seq2[T, error]
	reversible bool
}

// From returns a sequence over an in-memory slice. It can be evaluated any
// number of times and read in reverse. The slice must not be modified while
// the sequence is in use.
func From[T any](items []T) Seq[T] {
	return Seq[T]{
		src: func(yield func(T, error) bool) {
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
		},
		reversible: true,
	}
}

// FromSeq returns a forward-only sequence over a standard iterator.
func FromSeq[T any](items iter.Seq[T]) Seq[T] {
	return Seq[T]{
		src: func(yield func(T, error) bool) {
			if items == nil {
				return
			}
			for item := range items {
				if !yield(item, nil) {
					return
				}
			}
		},
	}
}

// FromScan returns a forward-only sequence over a fallible iterator such as a
// store scan. The first non-nil error ends the evaluation.
func FromScan[T any](items iter.Seq2[T, error]) Seq[T] {
	return Seq[T]{src: items}
}

// Fail returns a sequence whose evaluation fails with err.
func Fail[T any](err error) Seq[T] {
	return Seq[T]{
		src: func(yield func(T, error) bool) {
			var zero T
			yield(zero, err)
		},
		reversible: true,
	}
}

// Iter returns the underlying element/error pairs. A pair with a non-nil
// error is always the last one.
func (s Seq[T]) Iter() iter.Seq2[T, error] {
	if s.src == nil {
		return func(func(T, error) bool) {}
	}
	return func(yield func(T, error) bool) {
		for item, err := range s.src {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Reversible reports whether Last and LastOrDefault are supported.
func (s Seq[T]) Reversible() bool {
	return s.reversible
}

// ToSlice evaluates the sequence.
func (s Seq[T]) ToSlice() ([]T, error) {
	var items []T
	for item, err := range s.Iter() {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ForEach evaluates the sequence and calls fn for every element, stopping at
// the first error.
func (s Seq[T]) ForEach(fn func(T) error) error {
	if fn == nil {
		return fmt.Errorf("for each: %w", ErrNilFunc)
	}
	for item, err := range s.Iter() {
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

// derive builds a sequence that keeps the reversibility of s.
func derive[T, R any](s Seq[T], src iter.Seq2[R, error]) Seq[R] {
	return Seq[R]{src: src, reversible: s.reversible}
}

func fail[T any](yield func(T, error) bool, err error) {
	var zero T
	yield(zero, err)
}
