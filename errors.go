// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package disruptor

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrEOF is the sole shutdown signal in the dependency graph. It is raised
// when a followed Sequence's EOF flag is observed during a wait, and is not
// a fault: every WaitFor callsite in this package catches it, flags its
// own Sequence's EOF, and re-raises it (wrapped, so the stack shows where
// propagation happened) so that shutdown drains cleanly through the graph.
var ErrEOF = errors.New("disruptor: eof")

// ErrInvalidClaim is returned by Next(n) when n is outside [1, size].
var ErrInvalidClaim = errors.New("disruptor: claim size must be between 1 and the ring buffer size")

// IsEOF reports whether err is, or wraps, ErrEOF.
func IsEOF(err error) bool {
	return errors.Is(err, ErrEOF)
}

// propagateEOF flags cur's own EOF and rewraps err with the calling
// location so consumers and producers downstream see a fresh stack frame at
// the point shutdown was observed: catch, flag, re-raise.
func propagateEOF(cur *Sequence, err error) error {
	cur.SetEOF()
	return pkgerrors.Wrap(err, "disruptor: propagating eof")
}

// wrapEOF rewraps ErrEOF with a stack frame at the point it was observed,
// without flagging any sequence's EOF (used by the sequencers' Next when a
// followed cursor's EOF is seen during wrap protection, and by PublishAfter
// when the cursor's own EOF is seen).
func wrapEOF() error {
	return pkgerrors.Wrap(ErrEOF, "disruptor: eof observed")
}
