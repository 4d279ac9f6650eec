// Package harness wires producer and consumer cursors into a running
// topology and reports throughput once every goroutine has exited. It sits
// outside the disruptor core the same way a process supervisor sits
// outside a scheduler: the core never imports it.
package harness

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Stage is one unit of work in a topology: a producer loop or a consumer
// loop. Each stage runs in its own goroutine under a shared errgroup.Group,
// so the first non-nil error any stage returns cancels the rest.
type Stage struct {
	// Name identifies the stage in a Report. A random tag is assigned if
	// left blank, so concurrently-registered anonymous stages remain
	// distinguishable in a Report's per-stage breakdown.
	Name string
	Run  func(ctx context.Context) error
}

// Report summarizes one Harness run.
type Report struct {
	Stages  []string
	Elapsed time.Duration
	Err     error
}

// Harness runs a fixed set of Stages to completion and measures wall-clock
// elapsed time across the whole run.
type Harness struct {
	stages []Stage
}

// identifiable is satisfied by every disruptor cursor type (EventCursor
// promotes SetID to SingleProducerSequencer, MultiProducerSequencer, and
// ConsumerSequencer), without this package importing the core.
type identifiable interface {
	SetID(id string)
}

// Tag assigns a diagnostic id to a cursor being wired into a dependency
// graph, generating a random one when name is empty, and returns the id
// that was set. Distinguishing otherwise-anonymous fan-out consumers in
// Observer callbacks and test failure output is the only thing this id is
// for; the core never reads it back.
func Tag(c identifiable, name string) string {
	if name == "" {
		name = uuid.NewString()
	}
	c.SetID(name)
	return name
}

// New returns an empty Harness.
func New() *Harness {
	return &Harness{}
}

// Add registers a stage. If s.Name is empty, a short random tag is
// generated so the stage still has a stable identity in the Report.
func (h *Harness) Add(s Stage) {
	if s.Name == "" {
		s.Name = uuid.NewString()[:8]
	}
	h.stages = append(h.stages, s)
}

// Run starts every registered stage and blocks until all of them return. If
// one of them fails, ctx is canceled for the rest and Report.Err holds the
// first error.
func (h *Harness) Run(ctx context.Context) Report {
	eg, egCtx := errgroup.WithContext(ctx)
	names := make([]string, 0, len(h.stages))
	start := time.Now()

	for _, s := range h.stages {
		s := s
		names = append(names, s.Name)
		eg.Go(func() error {
			return s.Run(egCtx)
		})
	}

	err := eg.Wait()
	return Report{
		Stages:  names,
		Elapsed: time.Since(start),
		Err:     err,
	}
}
