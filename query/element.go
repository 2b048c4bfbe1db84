package query

import "fmt"

// First returns the first element matching every predicate, or ErrNotFound.
func (s Seq[T]) First(where ...func(T) bool) (T, error) {
	item, found, err := s.first("first", where)
	if err == nil && !found {
		err = fmt.Errorf("first: %w", ErrNotFound)
	}
	return item, err
}

// FirstOrDefault is First returning false instead of ErrNotFound.
func (s Seq[T]) FirstOrDefault(where ...func(T) bool) (T, bool, error) {
	return s.first("first or default", where)
}

func (s Seq[T]) first(op string, where []func(T) bool) (T, bool, error) {
	var zero T
	match, err := matcher(op, where)
	if err != nil {
		return zero, false, err
	}
	for item, err := range s.Iter() {
		if err != nil {
			return zero, false, err
		}
		if match(item) {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Last returns the last element matching every predicate, or ErrNotFound.
// Forward-only sequences fail with ErrReverseUnsupported.
func (s Seq[T]) Last(where ...func(T) bool) (T, error) {
	item, found, err := s.last("last", where)
	if err == nil && !found {
		err = fmt.Errorf("last: %w", ErrNotFound)
	}
	return item, err
}

// LastOrDefault is Last returning false instead of ErrNotFound.
func (s Seq[T]) LastOrDefault(where ...func(T) bool) (T, bool, error) {
	return s.last("last or default", where)
}

func (s Seq[T]) last(op string, where []func(T) bool) (T, bool, error) {
	var zero T
	if !s.reversible {
		return zero, false, fmt.Errorf("%s: %w", op, ErrReverseUnsupported)
	}
	match, err := matcher(op, where)
	if err != nil {
		return zero, false, err
	}

	last, found := zero, false
	for item, err := range s.Iter() {
		if err != nil {
			return zero, false, err
		}
		if match(item) {
			last, found = item, true
		}
	}
	return last, found, nil
}

// Single returns the only element matching every predicate. No match fails
// with ErrNotFound, a second match with ErrMoreThanOne.
func (s Seq[T]) Single(where ...func(T) bool) (T, error) {
	item, found, err := s.single("single", where)
	if err == nil && !found {
		err = fmt.Errorf("single: %w", ErrNotFound)
	}
	return item, err
}

// SingleOrDefault is Single returning false when nothing matches. A second
// match still fails with ErrMoreThanOne.
func (s Seq[T]) SingleOrDefault(where ...func(T) bool) (T, bool, error) {
	return s.single("single or default", where)
}

func (s Seq[T]) single(op string, where []func(T) bool) (T, bool, error) {
	var zero T
	match, err := matcher(op, where)
	if err != nil {
		return zero, false, err
	}

	result, found := zero, false
	for item, err := range s.Iter() {
		if err != nil {
			return zero, false, err
		}
		if !match(item) {
			continue
		}
		if found {
			return zero, false, fmt.Errorf("%s: %w", op, ErrMoreThanOne)
		}
		result, found = item, true
	}
	return result, found, nil
}
