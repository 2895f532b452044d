// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seqlock provides scope-bounded structural locking for growable
// sequences in Go.
//
// The core type [Seq] is an owning, growable sequence whose structural
// mutations — operations that may change its size or relocate existing
// elements — can be excluded for the duration of a scope by holding a
// [Guard]. While a guard is held, element pointers minted from it ([Ptr])
// are guaranteed not to be invalidated by relocation, so callers can hold
// direct references to elements without moving values out of the
// container and back.
//
// # Design Philosophy
//
// seqlock provides:
//   - A structural lock that is strictly weaker than full mutable-borrow
//     exclusivity: it forbids only relocation and destruction, never
//     aliasing of element values
//   - Checked and trusted access paths selected per call site, so the
//     cost of validation is paid only where the caller wants it
//   - Deterministic release on every exit path via bracketed scopes
//
// The lock is a logical exclusivity marker between nested and sequential
// scopes within one thread of control, not a cross-goroutine mutex.
// Every failure is synchronous and recoverable; no condition here can
// manifest as corrupted memory or a delayed crash elsewhere.
//
// # Sequences
//
// [Seq] supports access by position, growth, and removal:
//
//   - [New], [Of]: Constructors
//   - [Seq.Len], [Seq.At], [Seq.Set]: Non-structural access, always
//     available — slot assignment does not relocate storage
//   - [Seq.Append], [Seq.Insert], [Seq.Delete], [Seq.Clear],
//     [Seq.Shrink]: Structural mutations, guarded
//   - [Seq.Values]: Copy of the contents
//   - [Seq.All]: Iterator over (index, value) pairs
//   - [Seq.Locked]: Current lock state
//
// A sequence has exactly two states, unlocked and locked, and returns to
// unlocked whenever its guard is released.
//
// # Structural Locking
//
// [Guard] freezes a sequence's structure for a scope:
//
//   - [Seq.Acquire]: Take the lock (fails with [ErrAlreadyLocked] if held;
//     locks are exclusive and non-reentrant)
//   - [Guard.Release]: Unlock; idempotent, so `defer g.Release()` composes
//     with early explicit release
//   - [Guard.Ptr]: Mint an element pointer valid until release
//   - [Guard.Held], [Guard.Len]: Observers
//
// While a guard is held, [Seq.Append] and the other structural mutations
// fail with [ErrStructureLocked] — an explicit error at the call site,
// never a silent no-op.
//
// # Element Pointers
//
// [Ptr] is a non-owning pointer to one element of a locked sequence:
//
//   - [Ptr.Get], [Ptr.Set]: Checked access (error on staleness)
//   - [Ptr.Deref]: Checked access (panic on staleness)
//   - [Ptr.Ref]: Trusted direct *T, zero overhead
//   - [Ptr.Live], [Ptr.Index]: Observers
//
// Release invalidates every pointer minted under the guard at that
// instant. Checked access detects staleness with a single integer
// comparison against the sequence's release epoch; the trusted path skips
// the comparison and inherits the guard's lifetime as its contract.
//
// # Scoped Execution
//
// [With] and [Do] bracket acquire–use–release, guaranteeing release on
// normal return, error return, and panic:
//
//	sum, err := seqlock.With(s, func(g *seqlock.Guard[int]) (int, error) {
//		p, err := g.Ptr(1)
//		if err != nil {
//			return 0, err
//		}
//		return p.Deref() * 2, nil
//	})
//
// # Registered Pointers
//
// [Registered] and [RegPtr] extend staleness detection to individual
// values outside any container: a registered cell is dropped explicitly
// at the end of its logical lifetime, and every pointer to it fails with
// [ErrDeadTarget] from that point on.
//
//   - [Register]: Create a live cell
//   - [Registered.Value], [Registered.Drop], [Registered.Live]: Owner side
//   - [Registered.Ptr], [RegPtr.Get], [RegPtr.Set], [RegPtr.Deref],
//     [RegPtr.Live]: Pointer side
//
// # Errors
//
// All error conditions are sentinel values matched with errors.Is:
//
//   - [ErrAlreadyLocked]: Second Acquire without an intervening Release
//   - [ErrStructureLocked]: Structural mutation while locked
//   - [ErrOutOfRange]: Index outside the valid range
//   - [ErrUseAfterRelease]: Checked element-pointer access after release
//   - [ErrDeadTarget]: Registered-pointer access after Drop
//
// These are contract violations or legitimate runtime state to branch on,
// not transient faults; there is no retry policy.
//
// # Nesting
//
// Each [Seq] instance is independently lockable. Locking an outer
// sequence of sequences says nothing about the inner ones: obtain a
// pointer to an inner sequence under the outer guard, then lock it
// separately. Locks never propagate across containment boundaries.
package seqlock
