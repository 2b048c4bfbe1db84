package query

import "fmt"

// Distinct drops repeated elements, keeping the first occurrence in place.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, func(item T) T { return item })
}

// DistinctBy drops elements whose key was already seen.
func DistinctBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	return derive(s, func(yield func(T, error) bool) {
		if key == nil {
			fail(yield, fmt.Errorf("distinct: %w", ErrNilFunc))
			return
		}
		seen := make(map[K]struct{})
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			k := key(item)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(item, nil) {
				return
			}
		}
	})
}
