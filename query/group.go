package query

import "fmt"

// Grouping is a key with the elements that produced it, in input order.
type Grouping[K comparable, T any] struct {
	key   K
	items []T
}

func (g Grouping[K, T]) Key() K {
	return g.key
}

// Items returns the members of the group. It can be evaluated any number of
// times.
func (g Grouping[K, T]) Items() Seq[T] {
	return From(g.items)
}

func (g Grouping[K, T]) Len() int {
	return len(g.items)
}

// GroupBy partitions the sequence by key. Groups are emitted in the order
// their key first appears. The whole source is read before the first group is
// emitted.
func GroupBy[T any, K comparable](s Seq[T], key func(T) K) Seq[Grouping[K, T]] {
	return derive(s, func(yield func(Grouping[K, T], error) bool) {
		if key == nil {
			fail(yield, fmt.Errorf("group by: %w", ErrNilFunc))
			return
		}

		var groups []*Grouping[K, T]
		byKey := make(map[K]*Grouping[K, T])
		for item, err := range s.Iter() {
			if err != nil {
				fail(yield, err)
				return
			}
			k := key(item)
			g, ok := byKey[k]
			if !ok {
				g = &Grouping[K, T]{key: k}
				byKey[k] = g
				groups = append(groups, g)
			}
			g.items = append(g.items, item)
		}

		for _, g := range groups {
			if !yield(*g, nil) {
				return
			}
		}
	})
}
