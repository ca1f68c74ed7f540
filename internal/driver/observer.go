package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a compilation phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a phase boundary: loading, checking, generation or
// output writing.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during Compile. A nil observer
// is valid and receives nothing.
type PhaseObserver func(PhaseEvent)

func (o PhaseObserver) phase(name string, fn func()) {
	if o == nil {
		fn()
		return
	}
	o(PhaseEvent{Name: name, Status: PhaseStart})
	start := time.Now()
	fn()
	o(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(start)})
}
