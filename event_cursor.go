// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package disruptor

// EventCursor is the base participant: a Sequence that tracks this
// cursor's own published position, plus a Barrier of the cursors it must
// not overtake. SingleProducerSequencer, MultiProducerSequencer, and
// ConsumerSequencer all embed one.
type EventCursor struct {
	seq      *Sequence
	barrier  *Barrier
	id       string
	observer Observer
}

// NewEventCursor returns an EventCursor with a fresh Sequence and Barrier.
// The observer defaults to a no-op; SetObserver wires in a real one.
func NewEventCursor() EventCursor {
	return EventCursor{seq: NewSequence(), barrier: NewBarrier(), observer: noopObserver{}}
}

// Follow declares that this cursor must not advance past seq.
func (c *EventCursor) Follow(seq *Sequence) {
	c.barrier.Follow(seq)
}

// SetObserver wires in a collaborator to be called on publish, EOF, and
// rejected claims. Passing nil restores the no-op default.
func (c *EventCursor) SetObserver(o Observer) {
	if o == nil {
		o = noopObserver{}
	}
	c.observer = o
}

// SetID assigns the diagnostic name this cursor reports itself as to its
// Observer. A harness wiring a dependency graph is the usual caller.
func (c *EventCursor) SetID(id string) {
	c.id = id
}

// Publish makes the event at p available to followers. Single writer only.
func (c *EventCursor) Publish(p int64) {
	c.seq.Store(p)
	c.observer.SequenceAdvanced(c.id, p)
}

// Acquire loads this cursor's own published position.
func (c *EventCursor) Acquire() int64 {
	return c.seq.Acquire()
}

// SetEOF raises this cursor's own end-of-stream flag.
func (c *EventCursor) SetEOF() {
	c.seq.SetEOF()
	c.observer.EOFObserved(c.id)
}

// EOF reports whether this cursor's end-of-stream flag is set.
func (c *EventCursor) EOF() bool {
	return c.seq.EOF()
}

// Sequence returns the cursor's own underlying Sequence, so other cursors'
// barriers can Follow it.
func (c *EventCursor) Sequence() *Sequence {
	return c.seq
}
