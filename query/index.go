package query

import "fmt"

// Index maps unique keys to elements.
type Index[K comparable, T any] struct {
	entries map[K]T
}

// ToIndex evaluates the sequence into an index by key. Two elements with the
// same key fail with ErrDuplicateKey.
func ToIndex[T any, K comparable](s Seq[T], key func(T) K) (Index[K, T], error) {
	if key == nil {
		return Index[K, T]{}, fmt.Errorf("to index: %w", ErrNilFunc)
	}

	entries := make(map[K]T)
	for item, err := range s.Iter() {
		if err != nil {
			return Index[K, T]{}, err
		}
		k := key(item)
		if _, exists := entries[k]; exists {
			return Index[K, T]{}, fmt.Errorf("to index: key %v: %w", k, ErrDuplicateKey)
		}
		entries[k] = item
	}

	return Index[K, T]{entries: entries}, nil
}

func (i Index[K, T]) Get(key K) (T, bool) {
	item, ok := i.entries[key]
	return item, ok
}

func (i Index[K, T]) Len() int {
	return len(i.entries)
}
