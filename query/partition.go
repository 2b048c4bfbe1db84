package query

import "fmt"

// Skip bypasses the first n elements. Skipping past the end yields nothing.
func (s Seq[T]) Skip(n int) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		if n < 0 {
			fail(yield, fmt.Errorf("skip %d: %w", n, ErrNegativeCount))
			return
		}
		skipped := 0
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			if skipped < n {
				skipped++
				continue
			}
			if !yield(item, nil) {
				return
			}
		}
	})
}

// Take returns at most the first n elements and stops reading the source
// once it has them.
func (s Seq[T]) Take(n int) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		if n < 0 {
			fail(yield, fmt.Errorf("take %d: %w", n, ErrNegativeCount))
			return
		}
		if n == 0 {
			return
		}
		taken := 0
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			if !yield(item, nil) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	})
}

// Page returns the 1-based page of the given size.
func (s Seq[T]) Page(page, size int) Seq[T] {
	if page < 1 || size < 0 {
		return derive(s, func(yield func(T, error) bool) {
			fail(yield, fmt.Errorf("page %d of size %d: %w", page, size, ErrInvalidPage))
		})
	}
	return s.Skip((page - 1) * size).Take(size)
}
