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

func TestNewRingBuffer_RejectsNonPowerOfTwo(t *testing.T) {
	for _, size := range []int64{0, -1, 3, 5, 100, 1023} {
		if _, err := NewRingBuffer[int64](size); err == nil {
			t.Fatalf("size %d: expected error, got nil", size)
		}
	}
}

func TestNewRingBuffer_AcceptsPowerOfTwo(t *testing.T) {
	for _, size := range []int64{1, 2, 4, 1024, 1 << 16} {
		rb, err := NewRingBuffer[int64](size)
		if err != nil {
			t.Fatalf("size %d: unexpected error: %v", size, err)
		}
		if got := rb.Size(); got != size {
			t.Fatalf("size %d: Size() = %d", size, got)
		}
	}
}

func TestRingBuffer_IndexWraps(t *testing.T) {
	rb, err := NewRingBuffer[int64](4)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[int64]int64{0: 0, 1: 1, 3: 3, 4: 0, 5: 1, 7: 3, 8: 0}
	for pos, want := range cases {
		if got := rb.Index(pos); got != want {
			t.Fatalf("Index(%d) = %d, want %d", pos, got, want)
		}
	}
}

func TestRingBuffer_AtReadsBackWhatWasWritten(t *testing.T) {
	rb, err := NewRingBuffer[string](8)
	if err != nil {
		t.Fatal(err)
	}
	*rb.At(0) = "zero"
	*rb.At(9) = "nine" // wraps to the same slot as 1
	if got := *rb.At(0); got != "zero" {
		t.Fatalf("At(0) = %q", got)
	}
	if got := *rb.At(9); got != "nine" {
		t.Fatalf("At(9) = %q", got)
	}
}
