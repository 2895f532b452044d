// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlock

import (
	"iter"
	"slices"
)

// Seq is an owning, growable sequence of T backed by contiguous storage.
// Structural mutations — operations that may change the element count or
// relocate existing elements — are guarded: while a [Guard] is held on the
// sequence they fail with [ErrStructureLocked] instead of executing.
//
// Non-structural operations (Len, At, Set, Values, All) remain available
// whether or not the sequence is locked: the lock excludes mutation of
// structure, not access to element values.
//
// A Seq starts unlocked and returns to the unlocked state whenever its
// guard is released; there are no other states.
type Seq[T any] struct {
	elems []T
	guard *Guard[T] // non-nil while size-locked
	epoch uint64    // bumped on each guard release; stale Ptrs compare unequal
}

// New creates an empty sequence.
func New[T any]() *Seq[T] {
	return &Seq[T]{}
}

// Of creates a sequence holding copies of the given values.
func Of[T any](vs ...T) *Seq[T] {
	return &Seq[T]{elems: slices.Clone(vs)}
}

// Len returns the number of elements.
func (s *Seq[T]) Len() int { return len(s.elems) }

// Locked reports whether a structural lock is currently held.
func (s *Seq[T]) Locked() bool { return s.guard != nil }

// At returns the element at index i.
// Fails with [ErrOutOfRange] if i is outside [0, Len).
func (s *Seq[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.elems) {
		var zero T
		return zero, ErrOutOfRange
	}
	return s.elems[i], nil
}

// Set assigns v to the slot at index i.
// Slot assignment does not relocate storage, so Set is permitted while the
// sequence is locked. Fails with [ErrOutOfRange] if i is outside [0, Len).
func (s *Seq[T]) Set(i int, v T) error {
	if i < 0 || i >= len(s.elems) {
		return ErrOutOfRange
	}
	s.elems[i] = v
	return nil
}

// Append appends values to the end of the sequence.
// Fails with [ErrStructureLocked] while a guard is held: growth may
// relocate every element.
func (s *Seq[T]) Append(vs ...T) error {
	if s.guard != nil {
		return ErrStructureLocked
	}
	s.elems = append(s.elems, vs...)
	return nil
}

// Insert inserts v at index i, shifting later elements up.
// i may equal Len (append position). Fails with [ErrStructureLocked] while
// a guard is held, [ErrOutOfRange] if i is outside [0, Len].
func (s *Seq[T]) Insert(i int, v T) error {
	if s.guard != nil {
		return ErrStructureLocked
	}
	if i < 0 || i > len(s.elems) {
		return ErrOutOfRange
	}
	s.elems = slices.Insert(s.elems, i, v)
	return nil
}

// Delete removes the element at index i, shifting later elements down.
// Fails with [ErrStructureLocked] while a guard is held, [ErrOutOfRange]
// if i is outside [0, Len).
func (s *Seq[T]) Delete(i int) error {
	if s.guard != nil {
		return ErrStructureLocked
	}
	if i < 0 || i >= len(s.elems) {
		return ErrOutOfRange
	}
	s.elems = slices.Delete(s.elems, i, i+1)
	return nil
}

// Clear removes all elements, keeping capacity.
// Cleared slots are zeroed so the collector can reclaim their referents.
// Fails with [ErrStructureLocked] while a guard is held.
func (s *Seq[T]) Clear() error {
	if s.guard != nil {
		return ErrStructureLocked
	}
	clear(s.elems)
	s.elems = s.elems[:0]
	return nil
}

// Shrink reduces capacity to the current length, relocating elements.
// Fails with [ErrStructureLocked] while a guard is held.
func (s *Seq[T]) Shrink() error {
	if s.guard != nil {
		return ErrStructureLocked
	}
	s.elems = slices.Clip(s.elems)
	return nil
}

// Values returns a copy of the contents. The copy never aliases the
// sequence's storage and stays valid across later structural mutations.
func (s *Seq[T]) Values() []T {
	return slices.Clone(s.elems)
}

// All returns an iterator over (index, value) pairs.
// Iteration reads the storage directly; structurally mutating the sequence
// mid-iteration is the caller's error, and taking a [Guard] for the
// duration of the loop rules it out.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}
