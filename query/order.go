package query

import (
	"cmp"
	"fmt"
	"slices"
)

// OrderedSeq is a sequence sorted by one or more comparators. ThenBy adds a
// comparator that only breaks ties of the previous ones.
type OrderedSeq[T any] struct {
	Seq[T]
	source Seq[T]
	cmps   []func(a, b T) int
}

// OrderBy sorts the sequence by cmp. The sort is stable: elements that
// compare equal keep their input order. Sorting happens at evaluation and
// reads the whole source.
func (s Seq[T]) OrderBy(cmp func(a, b T) int) OrderedSeq[T] {
	return ordered(s, []func(a, b T) int{cmp})
}

// ThenBy orders elements that are equal under every previous comparator.
func (o OrderedSeq[T]) ThenBy(cmp func(a, b T) int) OrderedSeq[T] {
	cmps := append(slices.Clip(o.cmps), cmp)
	return ordered(o.source, cmps)
}

func ordered[T any](source Seq[T], cmps []func(a, b T) int) OrderedSeq[T] {
	seq := derive(source, func(yield func(T, error) bool) {
		for _, c := range cmps {
			if c == nil {
				fail(yield, fmt.Errorf("order by: %w", ErrNilFunc))
				return
			}
		}

		items, err := source.ToSlice()
		if err != nil {
			fail(yield, err)
			return
		}

		slices.SortStableFunc(items, func(a, b T) int {
			for _, c := range cmps {
				if r := c(a, b); r != 0 {
					return r
				}
			}
			return 0
		})

		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	})

	return OrderedSeq[T]{Seq: seq, source: source, cmps: cmps}
}

// Asc compares elements by key, ascending.
func Asc[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	if key == nil {
		return nil
	}
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Desc compares elements by key, descending.
func Desc[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	if key == nil {
		return nil
	}
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}
