package disruptor

// Observer receives callbacks at the points where a cursor's visible state
// changes: a publish, an EOF, or a rejected claim. It is satisfied
// structurally, so an instrumentation package never needs to import this
// one to provide an implementation. Every EventCursor defaults to noopObserver,
// so an unwired cursor pays nothing beyond the interface call.
type Observer interface {
	SequenceAdvanced(name string, pos int64)
	ClaimRejected(name string)
	EOFObserved(name string)
}

type noopObserver struct{}

func (noopObserver) SequenceAdvanced(string, int64) {}
func (noopObserver) ClaimRejected(string)           {}
func (noopObserver) EOFObserved(string)             {}
