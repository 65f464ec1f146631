package nonempty

import (
	"hash/maphash"
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
)

// Equal reports whether the two sequences produce the same elements in the
// same order. It is defined over the produced values: a lazily mapped
// pipeline and a materialized slice compare equal when their enumerations
// match, no matter how either side is represented internally.
//
// Both sides are enumerated in lockstep, so the cost is bounded by the
// shorter side plus one element.
func Equal[T comparable](a, b Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc behaves like Equal with a caller supplied element equality.
func EqualFunc[T any](a, b Seq[T], eq func(T, T) bool) bool {
	next, stop := iter.Pull(b.Iter())
	defer stop()
	for v := range a.Iter() {
		w, ok := next()
		if !ok || !eq(v, w) {
			return false
		}
	}
	_, ok := next()
	return !ok
}

// DeepEqual behaves like Equal for element types that are not comparable,
// by comparing elements with reflectkit.Equal. Types that define their own
// equality, like time.Time, are honoured through it.
func DeepEqual[T any](a, b Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return reflectkit.Equal(x, y) })
}

var hashSeed = maphash.MakeSeed()

// Hash returns a content hash of the sequence: the head's hash combined
// with every tail element's hash, in order, under a process wide seed.
// Sequences that are Equal hash to the same value within a process,
// regardless of how lazily either of them is represented.
//
// Hashing consumes the full sequence, so it shares Count's cost profile
// and must not be used on an infinite tail.
func Hash[T comparable](s Seq[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	for v := range s.Iter() {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}
