// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlock

// Ptr is a non-owning pointer to one element of a size-locked sequence.
// Ptrs are minted by [Guard.Ptr] and stay valid until the guard is
// released. Many Ptrs may be live under one guard, including aliases of
// the same slot; slot reassignment (via [Seq.Set] or [Ptr.Set]) never
// invalidates them — only release does.
//
// Access comes in two modes, selected per call site:
//
//   - Checked: Get, Set, and Deref verify liveness first (one integer
//     compare) and report [ErrUseAfterRelease] — or panic, for Deref —
//     on a stale pointer.
//   - Trusted: Ref returns a direct *T with zero overhead. Its validity
//     contract is the guard's lifetime; dereferencing it after release
//     is the caller's responsibility, the same as any raw pointer.
//
// The zero Ptr is stale.
type Ptr[T any] struct {
	seq   *Seq[T]
	idx   int
	epoch uint64
}

// Live reports whether the originating guard is still held.
func (p Ptr[T]) Live() bool {
	return p.seq != nil && p.epoch == p.seq.epoch
}

// Index returns the element index this pointer refers to.
func (p Ptr[T]) Index() int { return p.idx }

// Get returns the current value of the referenced slot.
// Fails with [ErrUseAfterRelease] once the originating guard has been
// released.
func (p Ptr[T]) Get() (T, error) {
	if !p.Live() {
		var zero T
		return zero, ErrUseAfterRelease
	}
	return p.seq.elems[p.idx], nil
}

// Set assigns v to the referenced slot.
// Fails with [ErrUseAfterRelease] once the originating guard has been
// released.
func (p Ptr[T]) Set(v T) error {
	if !p.Live() {
		return ErrUseAfterRelease
	}
	p.seq.elems[p.idx] = v
	return nil
}

// Deref returns the current value of the referenced slot.
// Panics if the originating guard has been released. Use Get when the
// caller wants to branch on staleness instead.
func (p Ptr[T]) Deref() T {
	if !p.Live() {
		panic("seqlock: element pointer used after release")
	}
	return p.seq.elems[p.idx]
}

// Ref returns a direct pointer into the sequence's storage.
// This is the trusted, zero-overhead access path: the pointer is
// guaranteed valid only while the originating guard is held, and no
// staleness check is performed here or on later dereferences.
func (p Ptr[T]) Ref() *T {
	return &p.seq.elems[p.idx]
}
