package nonempty

import (
	"cmp"
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Concat returns the receiver followed by every element of oth.
// The head stays the same; the new tail lazily yields the old tail and then
// the whole of oth. The result's length is the sum of both lengths.
func (s Seq[T]) Concat(oth Seq[T]) Seq[T] {
	return Seq[T]{
		head: s.head,
		tail: iterkit.Merge(s.Tail(), oth.Iter()),
	}
}

// Cons returns a sequence with v as its head
// and the entire receiver as its tail.
//
// It returns ErrInvalidArgument when v is an absent value.
func (s Seq[T]) Cons(v T) (Seq[T], error) {
	return New(v, s.Iter())
}

// Reverse returns a sequence that enumerates in the exact opposite order.
//
// # WARNING
//
// The reversed head is the original last element, so Reverse has to collect
// every element at call time. It does not work with infinite tails.
func (s Seq[T]) Reverse() Seq[T] {
	var vs = iterkit.Collect(s.Iter())
	last := len(vs) - 1
	return Seq[T]{
		head: vs[last],
		tail: func(yield func(T) bool) {
			for i := last - 1; 0 <= i; i-- {
				if !yield(vs[i]) {
					return
				}
			}
		},
	}
}

// SortBy returns the sequence ordered by the projected key, ascending.
// The sort is stable: elements with equal keys keep their original relative
// order, which makes the result deterministic.
//
// SortBy materializes the whole sequence at call time
// and shares Reverse's infinite tail warning.
func SortBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	return sortBy(s, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortByDescending returns the sequence ordered by the projected key,
// descending, with the same stability and cost as SortBy.
func SortByDescending[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	return sortBy(s, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
}

func sortBy[T any](s Seq[T], compare func(T, T) int) Seq[T] {
	var vs = iterkit.Collect(s.Iter())
	slices.SortStableFunc(vs, compare)
	return Seq[T]{
		head: vs[0],
		tail: iterkit.Slice(vs[1:]),
	}
}

// Partition splits the sequence into the elements that satisfy pred and the
// elements that don't, both in their original relative order. Either half
// may be empty, so both are handed back to the plain world as multi-use,
// fully materialized iter.Seq values.
func (s Seq[T]) Partition(pred func(T) bool) (satisfied iter.Seq[T], others iter.Seq[T]) {
	var yes, no []T
	for v := range s.Iter() {
		if pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
	}
	return iterkit.Slice(yes), iterkit.Slice(no)
}

// Intersperse returns the sequence with sep inserted between every pair of
// adjacent elements: not before the head, not after the last element.
// A single element sequence comes back unchanged, as it has no adjacent pair.
//
// The insertion is lazy, so Intersperse works on infinite tails,
// and the result's length is twice the original minus one.
func (s Seq[T]) Intersperse(sep T) Seq[T] {
	return Seq[T]{
		head: s.head,
		tail: func(yield func(T) bool) {
			for v := range s.Tail() {
				if !yield(sep) {
					return
				}
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Filter returns the elements that satisfy pred, lazily and in order.
// Filtering can drop every element, so the result lives in the plain world.
func (s Seq[T]) Filter(pred func(T) bool) iter.Seq[T] {
	return iterkit.Filter(s.Iter(), pred)
}
