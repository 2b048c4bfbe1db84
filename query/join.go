package query

import "fmt"

// Join pairs every left element with every right element of equal key. Left
// elements without a match are dropped. Results follow left order, then right
// order within a key. The right sequence is read once per evaluation.
func Join[L, R any, K comparable, O any](left Seq[L], right Seq[R], leftKey func(L) K, rightKey func(R) K, result func(L, R) O) Seq[O] {
	return Seq[O]{
		src: func(yield func(O, error) bool) {
			if leftKey == nil || rightKey == nil || result == nil {
				fail(yield, fmt.Errorf("join: %w", ErrNilFunc))
				return
			}

			lookup, err := buildLookup(right, rightKey)
			if err != nil {
				fail(yield, err)
				return
			}

			for l, err := range left.Iter() {
				if err != nil {
					fail(yield, err)
					return
				}
				for _, r := range lookup[leftKey(l)] {
					if !yield(result(l, r), nil) {
						return
					}
				}
			}
		},
		reversible: left.reversible && right.reversible,
	}
}

// GroupJoin produces exactly one result per left element, together with the
// right elements of equal key. The matches may be empty.
func GroupJoin[L, R any, K comparable, O any](left Seq[L], right Seq[R], leftKey func(L) K, rightKey func(R) K, result func(L, Seq[R]) O) Seq[O] {
	return Seq[O]{
		src: func(yield func(O, error) bool) {
			if leftKey == nil || rightKey == nil || result == nil {
				fail(yield, fmt.Errorf("group join: %w", ErrNilFunc))
				return
			}

			lookup, err := buildLookup(right, rightKey)
			if err != nil {
				fail(yield, err)
				return
			}

			for l, err := range left.Iter() {
				if err != nil {
					fail(yield, err)
					return
				}
				if !yield(result(l, From(lookup[leftKey(l)])), nil) {
					return
				}
			}
		},
		reversible: left.reversible && right.reversible,
	}
}

// CrossJoin combines every left element with every right element, left in
// the outer loop.
func CrossJoin[L, R, O any](left Seq[L], right Seq[R], result func(L, R) O) Seq[O] {
	return Seq[O]{
		src: func(yield func(O, error) bool) {
			if result == nil {
				fail(yield, fmt.Errorf("cross join: %w", ErrNilFunc))
				return
			}

			rights, err := right.ToSlice()
			if err != nil {
				fail(yield, err)
				return
			}

			for l, err := range left.Iter() {
				if err != nil {
					fail(yield, err)
					return
				}
				for _, r := range rights {
					if !yield(result(l, r), nil) {
						return
					}
				}
			}
		},
		reversible: left.reversible && right.reversible,
	}
}

func buildLookup[R any, K comparable](right Seq[R], key func(R) K) (map[K][]R, error) {
	lookup := make(map[K][]R)
	for r, err := range right.Iter() {
		if err != nil {
			return nil, err
		}
		k := key(r)
		lookup[k] = append(lookup[k], r)
	}
	return lookup, nil
}
