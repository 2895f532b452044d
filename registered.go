// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlock

// Registered cells and registered pointers.
//
// A [Registered] cell holds a value whose logical lifetime ends before the
// cell itself becomes unreachable — typically at the end of some scope the
// owner controls. [RegPtr] is a non-owning pointer to such a cell that
// knows when its target has been dropped: checked access after [Drop]
// fails with [ErrDeadTarget] instead of returning stale data.
//
// This complements [Guard]/[Ptr]: element pointers track relocation of a
// container's storage, registered pointers track the end of an individual
// value's logical lifetime regardless of where it lives.

// Registered is a registrable cell holding one value of type T.
type Registered[T any] struct {
	val  T
	dead bool
}

// Register creates a live cell holding v.
func Register[T any](v T) *Registered[T] {
	return &Registered[T]{val: v}
}

// Value returns a direct pointer to the cell's value, for the owner's own
// use. Valid until Drop.
func (r *Registered[T]) Value() *T { return &r.val }

// Drop ends the value's logical lifetime. Every RegPtr targeting this cell
// fails from this point on. Idempotent. The stored value is zeroed so the
// collector can reclaim its referents.
func (r *Registered[T]) Drop() {
	if r.dead {
		return
	}
	r.dead = true
	var zero T
	r.val = zero
}

// Live reports whether the cell has not been dropped.
func (r *Registered[T]) Live() bool { return !r.dead }

// Ptr returns a non-owning pointer to the cell.
func (r *Registered[T]) Ptr() RegPtr[T] { return RegPtr[T]{cell: r} }

// RegPtr is a non-owning pointer to a [Registered] cell.
// The zero RegPtr targets nothing and behaves as dropped.
type RegPtr[T any] struct {
	cell *Registered[T]
}

// Live reports whether the target cell exists and has not been dropped.
func (p RegPtr[T]) Live() bool {
	return p.cell != nil && !p.cell.dead
}

// Get returns the target's current value.
// Fails with [ErrDeadTarget] once the target has been dropped.
func (p RegPtr[T]) Get() (T, error) {
	if !p.Live() {
		var zero T
		return zero, ErrDeadTarget
	}
	return p.cell.val, nil
}

// Set assigns v to the target.
// Fails with [ErrDeadTarget] once the target has been dropped.
func (p RegPtr[T]) Set(v T) error {
	if !p.Live() {
		return ErrDeadTarget
	}
	p.cell.val = v
	return nil
}

// Deref returns the target's current value.
// Panics if the target has been dropped. Use Get when the caller wants to
// branch on liveness instead.
func (p RegPtr[T]) Deref() T {
	if !p.Live() {
		panic("seqlock: registered pointer target dropped")
	}
	return p.cell.val
}
