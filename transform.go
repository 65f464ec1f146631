package nonempty

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Map returns the sequence of transform applied to every element.
// The head is transformed eagerly, at call time; the tail is transformed
// lazily, each time it is enumerated. Order and element count are kept.
//
// A panic inside transform is not recovered: it surfaces immediately for the
// head, and during enumeration for tail elements.
func Map[To any, From any](s Seq[From], transform func(From) To) Seq[To] {
	return Seq[To]{
		head: transform(s.head),
		tail: iterkit.Map(s.Tail(), transform),
	}
}

// FlatMap is the monadic bind of Seq: it replaces every element with the
// full ordered content of bind(element) and splices the results together.
// Since bind can never return an empty sequence, the result is provably
// non-empty as well.
//
// bind(head) is evaluated at call time, because its head must be owned by
// the result. Everything after that stays lazy: the tail of bind(head), and
// the per-element results over the original tail, are only produced on
// demand during enumeration.
func FlatMap[To any, From any](s Seq[From], bind func(From) Seq[To]) Seq[To] {
	first := bind(s.head)
	var rest iter.Seq[To] = func(yield func(To) bool) {
		for v := range s.Tail() {
			for o := range bind(v).Iter() {
				if !yield(o) {
					return
				}
			}
		}
	}
	return Seq[To]{
		head: first.head,
		tail: iterkit.Merge(first.Tail(), rest),
	}
}

// Scan returns the sequence of every intermediate accumulator state of a
// left fold: the seed itself first, then the state after folding in each
// element in order. The result is one element longer than the receiver,
// and its last element equals Reduce(s, seed, fold).
//
// The states are produced lazily, so Scan works on infinite tails too.
func Scan[Acc any, T any](s Seq[T], seed Acc, fold func(Acc, T) Acc) Seq[Acc] {
	return Seq[Acc]{
		head: seed,
		tail: func(yield func(Acc) bool) {
			var acc = seed
			for v := range s.Iter() {
				acc = fold(acc, v)
				if !yield(acc) {
					return
				}
			}
		},
	}
}

// Reduce folds the whole sequence into a single value, head first.
func Reduce[R any, T any](s Seq[T], initial R, fn func(R, T) R) R {
	return iterkit.Reduce(s.Iter(), initial, fn)
}
