// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlock

// Bracketed lock scopes: acquire → use → release, with release guaranteed
// on every exit path. These are the preferred way to hold a [Guard]; they
// make it impossible to leak the lock past the scope that took it.

// With acquires a guard on s, runs fn with it, and releases the guard when
// fn returns — normally, with an error, or by panicking.
// Fails with [ErrAlreadyLocked] without calling fn if s is already locked.
func With[T, R any](s *Seq[T], fn func(*Guard[T]) (R, error)) (R, error) {
	g, err := s.Acquire()
	if err != nil {
		var zero R
		return zero, err
	}
	defer g.Release()
	return fn(g)
}

// Do is With for functions that produce no result.
func Do[T any](s *Seq[T], fn func(*Guard[T]) error) error {
	g, err := s.Acquire()
	if err != nil {
		return err
	}
	defer g.Release()
	return fn(g)
}
