package enumset

import "math/bits"

// An Iter is a cursor over the elements of a Set in ascending
// ordinal order. It iterates over a snapshot of the set's mask
// taken when Iter was called, so mutating the set afterwards does
// not affect an iterator already obtained from it.
//
// An Iter is forward-only and not restartable; obtain a new one
// from the set to iterate again.
type Iter[E any, M Mapping[E]] struct {
	// index is the ordinal of the lowest retained bit;
	// rem holds the not-yet-consumed bits, shifted down
	// so that bit 0 corresponds to ordinal index.
	index uint32
	rem   uint32
}

// Iter returns an iterator over the elements of the set.
func (s Set[E, M]) Iter() *Iter[E, M] {
	return &Iter[E, M]{rem: s.bits}
}

// Next returns the next element in ascending ordinal order.
// It returns the zero E and false when the iterator is exhausted.
func (it *Iter[E, M]) Next() (E, bool) {
	if it.rem == 0 {
		var zero E
		return zero, false
	}
	for it.rem&1 == 0 {
		it.index++
		it.rem >>= 1
	}
	// Sound because no bit is ever set in a Set's mask for which
	// no enumeration value exists.
	var m M
	e := m.FromOrdinal(it.index)
	it.index++
	it.rem >>= 1
	return e, true
}

// Remaining returns the exact number of elements left to yield.
func (it *Iter[E, M]) Remaining() int {
	return bits.OnesCount32(it.rem)
}

// Clone returns an independent iterator that resumes from the same
// position.
func (it *Iter[E, M]) Clone() *Iter[E, M] {
	c := *it
	return &c
}
