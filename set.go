// Package enumset implements a fixed-capacity set container for
// C-like enumeration types: types whose values carry no data and
// map to small non-negative integer ordinals.
//
// Membership is stored as a single 32-bit mask, one bit per value,
// so insert, remove, containment and all the set-algebra operations
// are constant-time bit operations with no allocation.
//
// A type becomes usable as an element by providing an implementation
// of [Mapping], conventionally generated with the enumgen command
// (see cmd/enumgen):
//
//	//go:generate enumgen -type=Color
package enumset

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// A Mapping converts values of the enumeration type E to and from
// their ordinals. It is a stateless companion type: the Set and Iter
// types instantiate their M type parameter's zero value whenever a
// conversion is needed, so implementations must not hold state.
//
// For every value e, m.FromOrdinal(m.Ordinal(e)) must equal e.
type Mapping[E any] interface {
	// Ordinal returns the zero-based declaration position of e.
	// The result must be less than 32.
	Ordinal(E) uint32

	// FromOrdinal returns the value whose Ordinal is v.
	// It need only be defined for values actually returned by
	// Ordinal; calling it with any other argument is a contract
	// violation, not a recoverable condition. Generated
	// implementations panic on such input, but the Set container
	// itself never produces it.
	FromOrdinal(uint32) E
}

// Set holds a set of values of the C-like enumeration type E,
// represented as a 32-bit mask indexed by ordinal.
//
// The zero value is an empty set. Set is a plain comparable value:
// two sets are equal exactly when they hold the same members
// (s1 == s2 compares the masks), and a Set may be used directly
// as a map key.
//
// Concurrent readers of the same Set value are fine; as with any
// plain Go value, mutation of a shared instance must be serialized
// by the caller.
type Set[E any, M Mapping[E]] struct {
	// bits holds one bit per member. No bit is ever set for
	// which no enumeration value exists: the only way bits are
	// set is through the ordinal of an actual value, and the
	// algebraic operations can only clear or transfer bits
	// already set that way.
	bits uint32
}

// New returns an empty set. It is equivalent to the zero value
// and exists for symmetry with Of and Collect.
func New[E any, M Mapping[E]]() Set[E, M] {
	return Set[E, M]{}
}

// Of returns the set holding the given elements.
// Duplicates are deduplicated; order is irrelevant.
func Of[E any, M Mapping[E]](elems ...E) Set[E, M] {
	var s Set[E, M]
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

// Collect returns the set holding all the elements of seq.
func Collect[E any, M Mapping[E]](seq iter.Seq[E]) Set[E, M] {
	var s Set[E, M]
	s.Extend(seq)
	return s
}

// bit returns the mask bit for e. An ordinal of 32 or more means
// the mapping is defective (only a hand-written one can be) and is
// reported immediately rather than silently masked off, which would
// corrupt the no-junk-bits invariant invisibly.
func bit[E any, M Mapping[E]](e E) uint32 {
	var m M
	v := m.Ordinal(e)
	if v >= 32 {
		panic(fmt.Sprintf("enumset: ordinal %d out of range; Set supports at most 32 values", v))
	}
	return 1 << v
}

// Len returns the number of elements in the set.
func (s Set[E, M]) Len() int {
	return bits.OnesCount32(s.bits)
}

// IsEmpty reports whether the set has no elements.
func (s Set[E, M]) IsEmpty() bool {
	return s.bits == 0
}

// Clear removes all elements from the set.
func (s *Set[E, M]) Clear() {
	s.bits = 0
}

// Contains reports whether the set contains the given value.
func (s Set[E, M]) Contains(e E) bool {
	return s.bits&bit[E, M](e) != 0
}

// Insert adds the given value to the set.
// It reports whether the value was not already present.
func (s *Set[E, M]) Insert(e E) bool {
	b := bit[E, M](e)
	added := s.bits&b == 0
	s.bits |= b
	return added
}

// Remove removes the given value from the set.
// It reports whether the value was present.
func (s *Set[E, M]) Remove(e E) bool {
	b := bit[E, M](e)
	present := s.bits&b != 0
	s.bits &^= b
	return present
}

// Extend adds all the elements of seq to the set.
func (s *Set[E, M]) Extend(seq iter.Seq[E]) {
	for e := range seq {
		s.Insert(e)
	}
}

// IsDisjoint reports whether the set has no elements in common
// with other. It is equivalent to checking for an empty
// intersection.
func (s Set[E, M]) IsDisjoint(other Set[E, M]) bool {
	return s.bits&other.bits == 0
}

// IsSuperset reports whether every element of other is in the set.
func (s Set[E, M]) IsSuperset(other Set[E, M]) bool {
	return s.bits&other.bits == other.bits
}

// IsSubset reports whether every element of the set is in other.
func (s Set[E, M]) IsSubset(other Set[E, M]) bool {
	return other.IsSuperset(s)
}

// Union returns the union of the set and other.
func (s Set[E, M]) Union(other Set[E, M]) Set[E, M] {
	return Set[E, M]{bits: s.bits | other.bits}
}

// Intersection returns the intersection of the set and other.
func (s Set[E, M]) Intersection(other Set[E, M]) Set[E, M] {
	return Set[E, M]{bits: s.bits & other.bits}
}

// Difference returns the set of elements in the set but not in other.
func (s Set[E, M]) Difference(other Set[E, M]) Set[E, M] {
	return Set[E, M]{bits: s.bits &^ other.bits}
}

// SymmetricDifference returns the set of elements in exactly one of
// the set and other.
func (s Set[E, M]) SymmetricDifference(other Set[E, M]) Set[E, M] {
	return Set[E, M]{bits: s.bits ^ other.bits}
}

// Bits returns the underlying mask. Bit i is set exactly when the
// value with ordinal i is a member. There is deliberately no
// converse constructor from a raw mask.
func (s Set[E, M]) Bits() uint32 {
	return s.bits
}

// All returns an iterator over the elements of the set in ascending
// ordinal order. The sequence ranges over a snapshot of the set
// taken when All is called.
func (s Set[E, M]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := s.Iter()
		for {
			e, ok := it.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Slice returns the elements of the set as a slice in ascending
// ordinal order.
func (s Set[E, M]) Slice() []E {
	it := s.Iter()
	elems := make([]E, 0, it.Remaining())
	for {
		e, ok := it.Next()
		if !ok {
			return elems
		}
		elems = append(elems, e)
	}
}

// String returns the elements in ascending ordinal order in the
// form {e1, e2, e3}.
func (s Set[E, M]) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	it := s.Iter()
	for i := 0; ; i++ {
		e, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", e)
	}
	buf.WriteByte('}')
	return buf.String()
}
