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
	"math"
	"runtime"
	"time"
)

// yieldIterations bounds the yield stage of WaitFor's backoff before
// falling back to sleeping. Spin and yield are fused into a single
// 10,000-iteration yield loop rather than a separate tight-spin prefix,
// since the spin prefix is a pure latency optimization, not a correctness
// requirement.
const yieldIterations = 10000

// sleepInterval is how long WaitFor sleeps between re-checks once the
// yield stage is exhausted.
const sleepInterval = 10 * time.Millisecond

// Barrier observes a set of upstream Sequences and answers non-blocking
// (GetMin) and blocking (WaitFor) queries about their progress.
//
// Membership is established with Follow before any wait begins; Follow is
// not safe to call concurrently with WaitFor/GetMin.
type Barrier struct {
	followed []*Sequence
	lastMin  int64
}

// NewBarrier returns an empty Barrier.
func NewBarrier() *Barrier {
	return &Barrier{lastMin: initSequence}
}

// Follow appends seq to the set of sequences this barrier waits on.
// Following the same Sequence more than once is idempotent in observable
// effect: both entries report the same value, so the computed min is
// unchanged.
func (b *Barrier) Follow(seq *Sequence) {
	b.followed = append(b.followed, seq)
}

// AnyEOF reports whether any followed sequence has raised EOF. Used by
// wrap-protection loops (SingleProducerSequencer/MultiProducerSequencer
// Next) to notice a consumer has shut down instead of spinning forever.
func (b *Barrier) AnyEOF() bool {
	for _, seq := range b.followed {
		if seq.EOF() {
			return true
		}
	}
	return false
}

// GetMin returns the minimum of every followed sequence, without blocking.
// If a previously cached min is already known to be past pos, it is
// returned directly instead of re-scanning.
func (b *Barrier) GetMin(pos int64) int64 {
	if b.lastMin > pos {
		return b.lastMin
	}
	minPos := int64(math.MaxInt64)
	for _, seq := range b.followed {
		if p := seq.Acquire(); p < minPos {
			minPos = p
		}
	}
	b.lastMin = minPos
	return minPos
}

// WaitFor blocks until every followed sequence is >= pos, backing off from
// a tight yield loop to periodic sleeps. It returns the minimum observed
// position once all dependencies are satisfied.
//
// If a followed sequence raises EOF while being waited on:
//   - and its observed position is already > pos, the wait on that
//     dependency succeeds immediately, truncated to observed-1;
//   - and its observed position equals pos, WaitFor returns pos, so a
//     caller that loops still receives the last published position;
//   - otherwise (observed position < pos) WaitFor returns ErrEOF.
//
// Because EOF short-circuits on the first dependency that is both EOF and
// past pos, the returned value may be less than the true minimum across all
// dependencies; callers are expected to loop.
func (b *Barrier) WaitFor(pos int64) (int64, error) {
	if b.lastMin > pos {
		return b.lastMin, nil
	}

	minPos := int64(math.MaxInt64)
	for _, seq := range b.followed {
		itrPos := seq.Acquire()

		for y := 0; itrPos < pos && y < yieldIterations; y++ {
			runtime.Gosched()
			itrPos = seq.Acquire()
			if seq.EOF() {
				break
			}
		}

		for itrPos < pos && !seq.EOF() {
			time.Sleep(sleepInterval)
			itrPos = seq.Acquire()
		}

		if seq.EOF() {
			if itrPos > pos {
				return itrPos - 1, nil
			}
			if itrPos == pos {
				return itrPos, nil
			}
			return 0, ErrEOF
		}

		if itrPos < minPos {
			minPos = itrPos
		}
	}
	b.lastMin = minPos
	return minPos, nil
}
