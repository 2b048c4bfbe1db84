package query

import "fmt"

// All reports whether every element satisfies pred. It is true for an empty
// sequence and stops at the first element that fails.
func (s Seq[T]) All(pred func(T) bool) (bool, error) {
	if pred == nil {
		return false, fmt.Errorf("all: %w", ErrNilFunc)
	}
	for item, err := range s.Iter() {
		if err != nil {
			return false, err
		}
		if !pred(item) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether some element matches every predicate. Without
// predicates it reports whether the sequence is non-empty.
func (s Seq[T]) Any(where ...func(T) bool) (bool, error) {
	_, found, err := s.first("any", where)
	return found, err
}
