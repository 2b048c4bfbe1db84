package query

import "fmt"

// Select maps every element through f.
func Select[T, R any](s Seq[T], f func(T) R) Seq[R] {
	return derive(s, func(yield func(R, error) bool) {
		if f == nil {
			fail(yield, fmt.Errorf("select: %w", ErrNilFunc))
			return
		}
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			if !yield(f(item), nil) {
				return
			}
		}
	})
}

// SelectMany maps every element to a slice and concatenates the slices,
// outer element first, then inner order.
func SelectMany[T, R any](s Seq[T], f func(T) []R) Seq[R] {
	return derive(s, func(yield func(R, error) bool) {
		if f == nil {
			fail(yield, fmt.Errorf("select many: %w", ErrNilFunc))
			return
		}
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			for _, inner := range f(item) {
				if !yield(inner, nil) {
					return
				}
			}
		}
	})
}

// SelectManyWith flattens like SelectMany and combines each outer element
// with each of its inner elements through result.
func SelectManyWith[T, C, R any](s Seq[T], coll func(T) []C, result func(T, C) R) Seq[R] {
	return derive(s, func(yield func(R, error) bool) {
		if coll == nil || result == nil {
			fail(yield, fmt.Errorf("select many: %w", ErrNilFunc))
			return
		}
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			for _, inner := range coll(item) {
				if !yield(result(item, inner), nil) {
					return
				}
			}
		}
	})
}

// TrySelect is Select for mappings that can fail. A mapping error ends the
// evaluation.
func TrySelect[T, R any](s Seq[T], f func(T) (R, error)) Seq[R] {
	return derive(s, func(yield func(R, error) bool) {
		if f == nil {
			fail(yield, fmt.Errorf("select: %w", ErrNilFunc))
			return
		}
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			mapped, err := f(item)
			if err != nil {
				fail(yield, err)
				return
			}
			if !yield(mapped, nil) {
				return
			}
		}
	})
}
