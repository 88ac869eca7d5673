package sched

import "fmt"

// Priority is an optional scheduling priority. Lower values are more important.
type Priority struct {
	value int64
	set   bool
}

// NoPriority is the priority of a process loaded without one.
func NoPriority() Priority { return Priority{} }

// WithPriority returns a priority holding v.
func WithPriority(v int64) Priority { return Priority{value: v, set: true} }

// Value returns the priority and whether one is present.
func (p Priority) Value() (int64, bool) { return p.value, p.set }

func (p Priority) String() string {
	if !p.set {
		return "-"
	}
	return fmt.Sprint(p.value)
}

type (
	// Process is one schedulable job. BurstDuration is the remaining burst and
	// is consumed by the engines; InitialBurst never changes.
	Process struct {
		ProcessID     int64
		ArrivalTime   int64
		BurstDuration int64
		InitialBurst  int64
		Priority      Priority

		// Valid only once a run has completed the process.
		WaitTime       int64
		TurnaroundTime int64
		CompletionTime int64
	}
)

// NewProcess builds a process with its burst recorded twice: once as the
// remaining burst, once as the immutable initial burst.
func NewProcess(id, arrival, burst int64, priority Priority) Process {
	return Process{
		ProcessID:     id,
		ArrivalTime:   arrival,
		BurstDuration: burst,
		InitialBurst:  burst,
		Priority:      priority,
	}
}

// complete records the completion at time finish and derives wait and
// turnaround from it.
func (p *Process) complete(finish int64) {
	p.CompletionTime = finish
	p.TurnaroundTime = finish - p.ArrivalTime
	p.WaitTime = p.TurnaroundTime - p.InitialBurst
}

func (p *Process) priorityValue() int64 {
	v, _ := p.Priority.Value()
	return v
}

// Validate reports the first record that can not be simulated.
func Validate(processes []Process) error {
	if len(processes) < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidProcessCount, len(processes))
	}
	for i := range processes {
		p := &processes[i]
		if p.ArrivalTime < 0 || p.BurstDuration < 0 || p.InitialBurst < 0 {
			return fmt.Errorf("%w: arrival/burst time of process %d", ErrNegativeValue, p.ProcessID)
		}
		if p.BurstDuration != p.InitialBurst {
			return fmt.Errorf("%w: process %d has %d of %d burst left, want a fresh process",
				ErrInvalidInput, p.ProcessID, p.BurstDuration, p.InitialBurst)
		}
		if v, ok := p.Priority.Value(); ok && v < 0 {
			return fmt.Errorf("%w: priority of process %d", ErrNegativeValue, p.ProcessID)
		}
	}
	return nil
}
