// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package disruptor

import "fmt"

// RingBuffer is fixed-capacity circular storage for events of type T. Its
// size must be a power of two so that a position can be mapped to a slot
// with a bitwise AND instead of a modulo.
//
// RingBuffer carries no position state of its own; concurrency is entirely
// delegated to the sequencers that surround it. At any instant, position p
// may be written by at most one goroutine (its claimer) and read only by
// followers whose cursor has not yet advanced past p while the claimer has
// published past p.
type RingBuffer[T any] struct {
	buffer []T
	mask   int64
}

// NewRingBuffer creates a RingBuffer with the given capacity, which must be
// a power of two. Returns an error otherwise instead of panicking, since an
// invalid size is a caller-supplied configuration mistake rather than a
// programmer error that should crash the process.
func NewRingBuffer[T any](size int64) (*RingBuffer[T], error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("disruptor: ring buffer size must be a positive power of two, got %d", size)
	}
	return &RingBuffer[T]{
		buffer: make([]T, size),
		mask:   size - 1,
	}, nil
}

// Index maps a position to its slot index: pos & (size-1).
func (r *RingBuffer[T]) Index(pos int64) int64 {
	return pos & r.mask
}

// Size returns the buffer's fixed capacity.
func (r *RingBuffer[T]) Size() int64 {
	return r.mask + 1
}

// At returns a pointer to the event at pos, indexed via the mask. Callers
// are responsible for only writing through the pointer while they hold the
// claim on pos, and only reading it once a publisher has revealed pos.
func (r *RingBuffer[T]) At(pos int64) *T {
	return &r.buffer[r.Index(pos)]
}
