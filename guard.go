// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlock

// Guard is a scope-bound structural lock on one [Seq].
// While a Guard is held, every structural mutation on the sequence fails
// with [ErrStructureLocked], so element pointers minted from the Guard
// cannot be invalidated by relocation.
//
// Guards coordinate nested and sequential scopes within one logical thread
// of control; they are not a cross-goroutine mutex. Callers that share a
// Seq between goroutines must add their own mutual exclusion.
//
// Release semantics follow the one-shot discipline: the first Release
// unlocks the sequence, later calls are no-ops. Pair Acquire with
// `defer g.Release()` to cover every exit path, including panics.
type Guard[T any] struct {
	seq   *Seq[T]
	epoch uint64 // seq.epoch at acquire time; unequal means released
}

// Acquire takes the structural lock on the sequence.
// Fails with [ErrAlreadyLocked] if a guard is already held: locks are
// exclusive per sequence, and re-entrant locking is not supported because
// two overlapping guards could not agree on when relocation becomes safe
// again.
func (s *Seq[T]) Acquire() (*Guard[T], error) {
	if s.guard != nil {
		return nil, ErrAlreadyLocked
	}
	g := &Guard[T]{seq: s, epoch: s.epoch}
	s.guard = g
	return g, nil
}

// Release unlocks the sequence and invalidates every [Ptr] minted from
// this guard. Safe to call more than once; only the first call on the
// currently-held guard has an effect.
func (g *Guard[T]) Release() {
	if g.seq.guard != g {
		return
	}
	g.seq.guard = nil
	g.seq.epoch++
}

// Held reports whether this guard still holds the lock.
func (g *Guard[T]) Held() bool { return g.seq.guard == g }

// Len returns the element count, which cannot change while the guard is
// held.
func (g *Guard[T]) Len() int { return len(g.seq.elems) }

// Ptr mints an element pointer for index i, valid until Release.
// Fails with [ErrOutOfRange] if i is outside [0, Len), and with
// [ErrUseAfterRelease] if the guard has already been released.
func (g *Guard[T]) Ptr(i int) (Ptr[T], error) {
	if g.seq.guard != g {
		return Ptr[T]{}, ErrUseAfterRelease
	}
	if i < 0 || i >= len(g.seq.elems) {
		return Ptr[T]{}, ErrOutOfRange
	}
	return Ptr[T]{seq: g.seq, idx: i, epoch: g.epoch}, nil
}
