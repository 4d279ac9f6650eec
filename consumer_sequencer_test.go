// Copyright (c) 2025 Joshua Skootsky
//
// Licensed under the Business Source License 1.1
// You may use this file only in compliance with one of:
// 1. BSL-1.1 (non-production use is free)
// 2. Commercial License (contact for pricing)
//
// After 4 years (2029-01-01), this becomes Apache-2.0

package disruptor

import "testing"

func TestConsumerSequencer_FreshStartsAtInitSequence(t *testing.T) {
	c := NewConsumerSequencer()
	if got := c.Acquire() + 1; got != 0 {
		t.Fatalf("acquire()+1 = %d, want 0", got)
	}
}

func TestConsumerSequencer_WaitForSetsOwnEOFOnFailure(t *testing.T) {
	producer := NewSequence()
	producer.Store(2)
	producer.SetEOF()

	c := NewConsumerSequencer()
	c.Follow(producer)

	if _, err := c.WaitFor(5); !IsEOF(err) {
		t.Fatalf("got %v, want ErrEOF", err)
	}
	if !c.EOF() {
		t.Fatal("consumer should have flagged its own EOF after observing upstream EOF")
	}
}

func TestConsumerSequencer_WaitForDrainsRemainingEventsBeforeEOF(t *testing.T) {
	producer := NewSequence()
	producer.Store(9)
	producer.SetEOF()

	c := NewConsumerSequencer()
	c.Follow(producer)

	avail, err := c.WaitFor(0)
	if err != nil {
		t.Fatalf("unexpected error draining: %v", err)
	}
	if avail != 8 {
		t.Fatalf("avail = %d, want 8 (observed-1)", avail)
	}

	last, err := c.WaitFor(avail + 1)
	if err != nil {
		t.Fatalf("unexpected error draining the last event: %v", err)
	}
	if last != 9 {
		t.Fatalf("last = %d, want 9", last)
	}

	if _, err := c.WaitFor(10); !IsEOF(err) {
		t.Fatalf("got %v, want ErrEOF once drained", err)
	}
}
