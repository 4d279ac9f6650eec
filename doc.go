// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

// Package disruptor provides a bounded, lock-free, multi-producer /
// multi-consumer ring-buffer messaging core in the LMAX "Disruptor" family.
//
// One or more publishers hand fixed-type events to one or more subscribers
// through a power-of-two-sized RingBuffer. Coordination is purely
// cooperative: every participant (a SingleProducerSequencer,
// MultiProducerSequencer, or ConsumerSequencer) owns a Sequence tracking its
// own progress, and declares the cursors it must not overtake by Following
// their Sequence through a Barrier.
//
// # Thread-Safety Guarantees
//
//   - At most one goroutine may drive a SingleProducerSequencer.
//   - Any number of goroutines may drive the same MultiProducerSequencer;
//     claims are coordinated through an atomic fetch-add.
//   - At most one goroutine may drive a given ConsumerSequencer, but many
//     independent ConsumerSequencers may follow the same producer to fan out
//     a stream to several readers.
//
// # Usage Example
//
//	source, _ := disruptor.NewRingBuffer[int64](1024)
//	producer, _ := disruptor.NewSingleProducerSequencer(1024)
//	consumer := disruptor.NewConsumerSequencer()
//
//	producer.Follow(consumer.Sequence())
//	consumer.Follow(producer.Sequence())
//
//	go func() {
//	    for i := int64(0); i < 1_000_000; i++ {
//	        pos, _ := producer.Next(1)
//	        *source.At(pos) = pos
//	        producer.Publish(pos)
//	    }
//	    producer.SetEOF()
//	}()
//
//	next := consumer.Acquire() + 1
//	for {
//	    avail, err := consumer.WaitFor(next)
//	    if err != nil {
//	        break // disruptor.IsEOF(err): stream drained
//	    }
//	    for ; next <= avail; next++ {
//	        _ = *source.At(next)
//	    }
//	    consumer.Publish(avail)
//	}
package disruptor
