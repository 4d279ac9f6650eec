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

func TestEventCursor_FreshAcquireIsInitSequence(t *testing.T) {
	c := NewEventCursor()
	if got := c.Acquire(); got != -1 {
		t.Fatalf("Acquire() = %d, want -1", got)
	}
}

func TestEventCursor_PublishThenAcquire(t *testing.T) {
	c := NewEventCursor()
	c.Publish(7)
	if got := c.Acquire(); got != 7 {
		t.Fatalf("Acquire() = %d, want 7", got)
	}
}

func TestEventCursor_FollowFeedsBarrier(t *testing.T) {
	upstream := NewSequence()
	upstream.Store(12)

	c := NewEventCursor()
	c.Follow(upstream)

	if got := c.barrier.GetMin(-1); got != 12 {
		t.Fatalf("barrier min = %d, want 12", got)
	}
}

func TestEventCursor_SetEOF(t *testing.T) {
	c := NewEventCursor()
	if c.EOF() {
		t.Fatal("fresh cursor should not be EOF")
	}
	c.SetEOF()
	if !c.EOF() {
		t.Fatal("expected EOF after SetEOF")
	}
}

type recordingObserver struct {
	advanced []int64
	eofs     int
	rejected int
}

func (r *recordingObserver) SequenceAdvanced(_ string, pos int64) { r.advanced = append(r.advanced, pos) }
func (r *recordingObserver) ClaimRejected(string)                 { r.rejected++ }
func (r *recordingObserver) EOFObserved(string)                   { r.eofs++ }

func TestEventCursor_ObserverDefaultsToNoOp(t *testing.T) {
	c := NewEventCursor()
	c.Publish(3)
	c.SetEOF()
}

func TestEventCursor_SetObserverReceivesCallbacks(t *testing.T) {
	c := NewEventCursor()
	rec := &recordingObserver{}
	c.SetObserver(rec)
	c.SetID("cursor-a")

	c.Publish(5)
	c.Publish(6)
	c.SetEOF()

	if got := rec.advanced; len(got) != 2 || got[0] != 5 || got[1] != 6 {
		t.Fatalf("advanced = %v, want [5 6]", got)
	}
	if rec.eofs != 1 {
		t.Fatalf("eofs = %d, want 1", rec.eofs)
	}
}

func TestEventCursor_SetObserverNilRestoresNoOp(t *testing.T) {
	c := NewEventCursor()
	c.SetObserver(&recordingObserver{})
	c.SetObserver(nil)
	c.Publish(1)
	c.SetEOF()
}
