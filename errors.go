// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlock

import "errors"

// Error taxonomy for guarded sequence operations.
// All conditions are recoverable and reported synchronously at the call
// site; none is ever swallowed or deferred. Match with errors.Is.

var (
	// ErrAlreadyLocked reports an Acquire on a sequence whose structural
	// lock is already held. Locks are exclusive and non-reentrant.
	ErrAlreadyLocked = errors.New("seqlock: sequence already size-locked")

	// ErrStructureLocked reports a structural mutation (Append, Insert,
	// Delete, Clear, Shrink) attempted while a guard is held.
	ErrStructureLocked = errors.New("seqlock: structural mutation on size-locked sequence")

	// ErrOutOfRange reports an element index outside [0, Len).
	ErrOutOfRange = errors.New("seqlock: element index out of range")

	// ErrUseAfterRelease reports a checked access through an element
	// pointer whose originating guard has been released.
	ErrUseAfterRelease = errors.New("seqlock: element pointer used after guard release")

	// ErrDeadTarget reports an access through a registered pointer whose
	// target cell has been dropped.
	ErrDeadTarget = errors.New("seqlock: registered pointer target dropped")
)
