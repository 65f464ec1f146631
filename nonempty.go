// Package nonempty provides an immutable sequence type
// that is guaranteed by construction to contain at least one element.
//
// # Summary
//
// A Seq is an owned first element (the head) plus a lazily evaluated
// iter.Seq[T] (the tail). Because the head always exists, operations that are
// partial on a plain iterator become total on a Seq: Head and Last need no
// ok flag, and transformations such as Map or FlatMap can promise a non-empty
// result to their callers through the type system alone.
//
// The package deliberately keeps two worlds apart:
// the plain, possibly empty world of iter.Seq[T],
// and the non-empty world of Seq[T].
// Operations that can shrink a sequence below one element,
// like Filter or Partition, hand their result back to the plain world;
// everything else stays non-empty.
//
// Values are immutable. Every operation returns a new Seq and leaves the
// receiver untouched, so sharing a Seq between call sites is always safe.
// Tails stay lazy wherever the operation allows it; the operations that must
// see every element to produce their result (Reverse, SortBy, Count, Hash)
// say so in their documentation.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Sequence
// https://en.wikipedia.org/wiki/Iterator_pattern
package nonempty

import (
	"iter"
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// ErrInvalidArgument is returned by the construction entry points
// when a required value is absent (nil pointer, interface, map, slice,
// chan or func) or when a source sequence has no element to own as head.
// The returned errors wrap ErrInvalidArgument, so errors.Is matches it.
const ErrInvalidArgument errorkit.Error = "[nonempty] invalid argument"

// Seq is an immutable, non-empty sequence of T values.
//
// Enumerating a Seq yields the head first, then the tail in its original
// order. The tail may be lazy and may even be infinite; a Seq only promises
// that at least one element exists, not that the sequence ends.
//
// Seq contains a func typed field, so Seq values are intentionally not
// comparable with ==; value equality is defined over the produced elements
// through Equal, EqualFunc and DeepEqual, and hashing through Hash.
//
// The zero value behaves as a singleton of T's zero value. Prefer the
// constructors, which validate their inputs.
type Seq[T any] struct {
	head T
	tail iter.Seq[T]
}

// New returns a Seq that owns the given head and continues with the given
// tail. The tail is not probed or materialized in any way.
//
// It returns ErrInvalidArgument when head is an absent value
// or when tail is a nil sequence.
func New[T any](head T, tail iter.Seq[T]) (Seq[T], error) {
	if isAbsent(head) {
		return Seq[T]{}, ErrInvalidArgument.F("nil head value")
	}
	if tail == nil {
		return Seq[T]{}, ErrInvalidArgument.F("nil tail sequence")
	}
	return Seq[T]{head: head, tail: tail}, nil
}

// Singleton returns a Seq that contains the given value and nothing else.
func Singleton[T any](head T) (Seq[T], error) {
	return New(head, iterkit.Empty[T]())
}

// FromSeq validates that src has at least one element and adopts it:
// the first element becomes the head, the remainder becomes the tail.
//
// Probing forces a single step of src; the remainder stays as lazy as src
// itself. The source is expected to be multi-use, the way an iter.Seq
// is by convention: the returned Seq enumerates src again past its first
// element whenever the tail is ranged. For a single-use source, collect it
// into a slice first and use FromSlice.
//
// It returns ErrInvalidArgument when src is nil or yields no element.
func FromSeq[T any](src iter.Seq[T]) (Seq[T], error) {
	if src == nil {
		return Seq[T]{}, ErrInvalidArgument.F("nil source sequence")
	}
	head, ok := iterkit.First(src)
	if !ok {
		return Seq[T]{}, ErrInvalidArgument.F("empty source sequence")
	}
	return New(head, iterkit.Offset(src, 1))
}

// FromSlice returns a Seq over the elements of the given slice,
// in order. The slice is not copied.
//
// It returns ErrInvalidArgument when the slice has no element.
func FromSlice[T any](vs []T) (Seq[T], error) {
	if len(vs) == 0 {
		return Seq[T]{}, ErrInvalidArgument.F("empty source slice")
	}
	return New(vs[0], iterkit.Slice(vs[1:]))
}

// Head returns the first element. It always exists.
func (s Seq[T]) Head() T { return s.head }

// Tail returns everything after the head as a plain, possibly empty
// sequence, in the original order and with the original laziness.
func (s Seq[T]) Tail() iter.Seq[T] {
	if s.tail == nil {
		return iterkit.Empty[T]()
	}
	return s.tail
}

// Iter returns the whole sequence as an iter.Seq[T]: the head first,
// then each element of the tail in order. This is how a Seq composes with
// generic iterator processing code.
//
// Repeated enumeration is safe and reproduces the same values, provided the
// underlying tail is multi-use.
func (s Seq[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(s.head) {
			return
		}
		for v := range s.Tail() {
			if !yield(v) {
				return
			}
		}
	}
}

// Count reports how many elements the sequence has.
//
// # WARNING
//
// Count is not a cheap accessor: it consumes the whole tail, so it costs a
// full enumeration, and it never returns on an infinite tail.
func (s Seq[T]) Count() int {
	return 1 + iterkit.Count(s.Tail())
}

// ToSlice collects every element into a new slice, head first.
// It shares the cost profile of Count.
func (s Seq[T]) ToSlice() []T {
	return iterkit.Collect(s.Iter())
}

// Last returns the final element of the sequence.
// Non-emptiness makes it total; it still costs a full enumeration.
func (s Seq[T]) Last() T {
	last, _ := iterkit.Last(s.Iter())
	return last
}

// isAbsent reports whether the value is the absent sentinel of its kind.
// Values of non-nilable kinds are never absent.
func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() { // nil value in an interface typed T
		return true
	}
	return reflectkit.IsNil(rv)
}
