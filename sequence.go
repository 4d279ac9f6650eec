// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package disruptor

import "sync/atomic"

const cacheLinePad = 64

// initSequence is the sentinel value a Sequence starts at. The first valid
// published position is 0, so a fresh cursor's Acquire returns -1.
const initSequence = int64(-1)

// Sequence is a padded, monotonic 64-bit counter. Exactly one goroutine
// writes a given Sequence's counter through Store; IncrementAndGet may be
// called by many goroutines at once; any number of goroutines may read it
// through Acquire.
//
// Store uses release ordering and Acquire uses acquire ordering, so any
// writes that happen-before a Store (including writes into ring storage at
// positions covered by the published value) are visible to a goroutine that
// observes Acquire() at or past that value.
//
// Sequence is padded to a cache line on both sides so that two independent
// Sequences never share a cache line, which would otherwise cause false
// sharing between a producer and its consumers.
type Sequence struct {
	_       [cacheLinePad]byte
	counter atomic.Int64
	eof     atomic.Bool
	_       [cacheLinePad - 8]byte
}

// NewSequence returns a Sequence initialized to initSequence (-1).
func NewSequence() *Sequence {
	s := &Sequence{}
	s.counter.Store(initSequence)
	return s
}

// Acquire loads the counter with acquire ordering.
func (s *Sequence) Acquire() int64 {
	return s.counter.Load()
}

// Store writes v with release ordering. Precondition: single writer.
func (s *Sequence) Store(v int64) {
	s.counter.Store(v)
}

// IncrementAndGet atomically adds n to the counter with release ordering
// and returns the post-increment value. Safe for multiple concurrent
// writers (the only coordination point among concurrent producers).
func (s *Sequence) IncrementAndGet(n int64) int64 {
	return s.counter.Add(n)
}

// SetEOF raises the end-of-stream flag. Idempotent; set by the owning
// goroutine only.
func (s *Sequence) SetEOF() {
	s.eof.Store(true)
}

// EOF reports whether SetEOF has been called. The flag is monotonic, so a
// relaxed read is acceptable: callers that observe false may re-check after
// blocking.
func (s *Sequence) EOF() bool {
	return s.eof.Load()
}
