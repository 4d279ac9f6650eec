// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package disruptor

// ConsumerSequencer is a subscriber cursor. WaitFor blocks on upstream
// progress; Publish (inherited from EventCursor) republishes the
// consumer's own position once it has finished with a batch of events.
type ConsumerSequencer struct {
	EventCursor
}

// NewConsumerSequencer returns a fresh ConsumerSequencer. Its Acquire()
// starts at -1, so the first sequence a caller should read from is 0.
func NewConsumerSequencer() *ConsumerSequencer {
	c := &ConsumerSequencer{EventCursor: NewEventCursor()}
	return c
}

// WaitFor blocks until every upstream dependency has advanced to
// nextSequence, returning the minimum observed. On any failure from the
// barrier (including ErrEOF), the consumer raises its own EOF flag before
// propagating the failure, so downstream consumers and a producer's
// wrap-protection loop can notice shutdown.
func (c *ConsumerSequencer) WaitFor(nextSequence int64) (int64, error) {
	avail, err := c.barrier.WaitFor(nextSequence)
	if err != nil {
		c.observer.EOFObserved(c.id)
		return 0, propagateEOF(c.Sequence(), err)
	}
	return avail, nil
}
