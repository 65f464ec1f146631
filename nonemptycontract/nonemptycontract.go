// Package nonemptycontract defines the behavioral contract that every
// nonempty.Seq value has to fulfil, no matter which operation produced it.
package nonemptycontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"

	"go.llib.dev/nonempty"
)

// Seq asserts the invariants of the non-empty sequence type on a subject
// made by mk: at least one element, head-first ordering, a tail that follows
// the head in order, and safe re-enumeration.
func Seq[T any](mk func(testing.TB) nonempty.Seq[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) nonempty.Seq[T] {
		return mk(t)
	})

	s.Then("enumeration yields at least one value", func(t *testcase.T) {
		var n int
		for range subject.Get(t).Iter() {
			n++
		}
		assert.True(t, 1 <= n)
	})

	s.Then("enumeration starts with the head", func(t *testcase.T) {
		seq := subject.Get(t)
		for v := range seq.Iter() {
			assert.Equal(t, seq.Head(), v)
			break
		}
	})

	s.Then("the head is followed by the tail, in order", func(t *testcase.T) {
		seq := subject.Get(t)
		exp := append([]T{seq.Head()}, iterkit.Collect(seq.Tail())...)
		assert.Equal(t, exp, seq.ToSlice())
	})

	s.Then("re-enumeration reproduces the same values", func(t *testcase.T) {
		seq := subject.Get(t)
		assert.Equal(t, seq.ToSlice(), seq.ToSlice())
	})

	s.Then("the count matches the enumerated length", func(t *testcase.T) {
		seq := subject.Get(t)
		assert.Equal(t, len(seq.ToSlice()), seq.Count())
	})

	s.Then("early termination of the enumeration is supported", func(t *testcase.T) {
		seq := subject.Get(t)
		var got []T
		for v := range seq.Iter() {
			got = append(got, v)
			break
		}
		assert.Equal(t, 1, len(got))
		assert.Equal(t, seq.Head(), got[0])
	})

	return s.AsSuite("nonempty.Seq")
}
