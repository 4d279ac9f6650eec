// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package disruptor

import "runtime"

// MultiProducerSequencer is a publisher cursor for multiple concurrent
// writers. Producers claim disjoint ranges with an atomic fetch-add on
// claimCursor, fill them in parallel, and publish in claim order via
// PublishAfter, which guarantees the owned sequence never reveals a slot
// before its predecessor's highest sequence has been revealed.
//
// Claim validation rejects a claim larger than size (not smaller), and the
// wrap-protection loop calls the barrier's GetMin directly rather than
// through a wait that double-shifts by size+1.
type MultiProducerSequencer struct {
	EventCursor
	size              int64
	claimCursor       Sequence
	cachedMinSequence int64
}

// NewMultiProducerSequencer returns a MultiProducerSequencer for a ring
// buffer of the given size, which must be a power of two.
func NewMultiProducerSequencer(size int64) (*MultiProducerSequencer, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, ErrInvalidClaim
	}
	m := &MultiProducerSequencer{
		EventCursor:       NewEventCursor(),
		size:              size,
		cachedMinSequence: initSequence,
	}
	m.claimCursor.Store(initSequence)
	return m, nil
}

// Next atomically claims n consecutive slots (default 1) and returns the
// highest sequence in the claimed range [next-n+1, next]. It blocks until
// there is enough room behind the claim for wrap protection, and fails
// with ErrEOF if a followed consumer has shut down while waiting.
func (m *MultiProducerSequencer) Next(n int64) (int64, error) {
	if n < 1 || n > m.size {
		m.observer.ClaimRejected(m.id)
		return 0, ErrInvalidClaim
	}

	nextSequence := m.claimCursor.IncrementAndGet(n)
	wrapPoint := nextSequence - m.size

	if wrapPoint >= m.cachedMinSequence {
		for !m.barrier.AnyEOF() && wrapPoint > m.barrier.GetMin(wrapPoint) {
			runtime.Gosched()
		}
		if m.barrier.AnyEOF() {
			return 0, wrapEOF()
		}
		m.cachedMinSequence = m.barrier.GetMin(wrapPoint)
	}

	return nextSequence, nil
}

// PublishAfter reveals pos on the owned sequence only after the
// immediately-preceding claim (afterPos) has itself been revealed,
// preserving claim order as the visible publication order even though
// producers may finish writing their slots out of order.
//
// Precondition: pos > afterPos.
func (m *MultiProducerSequencer) PublishAfter(pos, afterPos int64) error {
	if pos <= afterPos {
		panic("disruptor: PublishAfter requires pos > afterPos")
	}
	for {
		acquired := m.Acquire()
		if acquired >= afterPos {
			break
		}
		if m.EOF() {
			return wrapEOF()
		}
		runtime.Gosched()
	}
	m.Publish(pos)
	return nil
}
