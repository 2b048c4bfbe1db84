package query

import "fmt"

// Where keeps the elements satisfying pred, in order.
func (s Seq[T]) Where(pred func(T) bool) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		if pred == nil {
			fail(yield, fmt.Errorf("where: %w", ErrNilFunc))
			return
		}
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			if pred(item) && !yield(item, nil) {
				return
			}
		}
	})
}

// Filter is Where for predicates that can fail. A predicate error ends the
// evaluation.
func (s Seq[T]) Filter(pred func(T) (bool, error)) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		if pred == nil {
			fail(yield, fmt.Errorf("filter: %w", ErrNilFunc))
			return
		}
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			ok, err := pred(item)
			if err != nil {
				fail(yield, fmt.Errorf("filter: %w", err))
				return
			}
			if ok && !yield(item, nil) {
				return
			}
		}
	})
}

// matcher combines optional predicates into one. No predicates match
// everything.
func matcher[T any](op string, where []func(T) bool) (func(T) bool, error) {
	for _, pred := range where {
		if pred == nil {
			return nil, fmt.Errorf("%s: %w", op, ErrNilFunc)
		}
	}
	return func(item T) bool {
		for _, pred := range where {
			if !pred(item) {
				return false
			}
		}
		return true
	}, nil
}
