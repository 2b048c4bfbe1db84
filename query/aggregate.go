package query

import (
	"cmp"
	"fmt"
)

// Number is the constraint for Sum and Average.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Count returns the number of elements matching every predicate.
func (s Seq[T]) Count(where ...func(T) bool) (int, error) {
	match, err := matcher("count", where)
	if err != nil {
		return 0, err
	}
	n := 0
	for item, err := range s.Iter() {
		if err != nil {
			return 0, err
		}
		if match(item) {
			n++
		}
	}
	return n, nil
}

// Sum adds f over the sequence. The sum of an empty sequence is zero.
func Sum[T any, N Number](s Seq[T], f func(T) N) (N, error) {
	var total N
	if f == nil {
		return total, fmt.Errorf("sum: %w", ErrNilFunc)
	}
	for item, err := range s.Iter() {
		if err != nil {
			return 0, err
		}
		total += f(item)
	}
	return total, nil
}

// Max returns the largest value of f. An empty sequence fails with
// ErrEmptySequence.
func Max[T any, V cmp.Ordered](s Seq[T], f func(T) V) (V, error) {
	return extreme("max", s, f, func(candidate, current V) bool { return candidate > current })
}

// Min returns the smallest value of f. An empty sequence fails with
// ErrEmptySequence.
func Min[T any, V cmp.Ordered](s Seq[T], f func(T) V) (V, error) {
	return extreme("min", s, f, func(candidate, current V) bool { return candidate < current })
}

func extreme[T any, V cmp.Ordered](op string, s Seq[T], f func(T) V, better func(candidate, current V) bool) (V, error) {
	var result V
	if f == nil {
		return result, fmt.Errorf("%s: %w", op, ErrNilFunc)
	}
	found := false
	for item, err := range s.Iter() {
		if err != nil {
			return result, err
		}
		v := f(item)
		if !found || better(v, result) {
			result, found = v, true
		}
	}
	if !found {
		return result, fmt.Errorf("%s: %w", op, ErrEmptySequence)
	}
	return result, nil
}

// Average returns the arithmetic mean of f. An empty sequence fails with
// ErrEmptySequence.
func Average[T any, N Number](s Seq[T], f func(T) N) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("average: %w", ErrNilFunc)
	}
	var sum float64
	n := 0
	for item, err := range s.Iter() {
		if err != nil {
			return 0, err
		}
		sum += float64(f(item))
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("average: %w", ErrEmptySequence)
	}
	return sum / float64(n), nil
}
