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

// SingleProducerSequencer is a publisher cursor optimized for exactly one
// writer. It tracks the next sequence it will hand out and a cached
// minimum observed from its barrier, eliding any atomic increment on the
// claim path: the only atomic operation per event is the release store in
// Publish.
type SingleProducerSequencer struct {
	EventCursor
	size              int64
	nextSequence      int64
	cachedMinSequence int64
}

// NewSingleProducerSequencer returns a SingleProducerSequencer for a ring
// buffer of the given size, which must be a power of two.
func NewSingleProducerSequencer(size int64) (*SingleProducerSequencer, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, ErrInvalidClaim
	}
	return &SingleProducerSequencer{
		EventCursor:       NewEventCursor(),
		size:              size,
		nextSequence:      initSequence,
		cachedMinSequence: initSequence,
	}, nil
}

// Next claims a run of n sequences (default 1) and returns the highest
// sequence in that run. It blocks, spinning on the barrier's cached
// minimum, until there is enough room in the ring buffer behind the
// claimed range (wrap protection).
func (s *SingleProducerSequencer) Next(n int64) (int64, error) {
	if n < 1 || n > s.size {
		s.observer.ClaimRejected(s.id)
		return 0, ErrInvalidClaim
	}

	nextSequence := s.nextSequence + n
	wrapPoint := nextSequence - s.size

	if wrapPoint >= s.cachedMinSequence {
		minSequence := s.barrier.GetMin(wrapPoint)
		for minSequence < wrapPoint {
			if s.barrier.AnyEOF() {
				return 0, wrapEOF()
			}
			runtime.Gosched()
			minSequence = s.barrier.GetMin(wrapPoint)
		}
		s.cachedMinSequence = minSequence
	}

	s.nextSequence = nextSequence
	return nextSequence, nil
}
