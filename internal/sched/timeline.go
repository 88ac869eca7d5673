package sched

import "fmt"

// Owner identifies who holds the CPU during a time slice.
type Owner struct {
	PID  int64
	Idle bool
}

// Idle is the owner of slices where no process runs.
var Idle = Owner{Idle: true}

// ProcessOwner returns the owner for the process with the given id.
func ProcessOwner(pid int64) Owner { return Owner{PID: pid} }

func (o Owner) String() string {
	if o.Idle {
		return "IDLE"
	}
	return fmt.Sprintf("P%d", o.PID)
}

// TimeSlice is one interval [Start, Stop) of the Gantt schedule.
type TimeSlice struct {
	Owner Owner
	Start int64
	Stop  int64
}

// Timeline is a gap-free, non-overlapping Gantt schedule sorted by start
// time in which no two neighbouring slices share an owner.
type Timeline []TimeSlice

// Add appends [start, stop) for owner, extending the last slice instead when
// it belongs to the same owner and ends at start. Empty intervals are dropped.
func (t Timeline) Add(owner Owner, start, stop int64) Timeline {
	if stop <= start {
		return t
	}
	if n := len(t); n > 0 && t[n-1].Owner == owner && t[n-1].Stop == start {
		t[n-1].Stop = stop
		return t
	}
	return append(t, TimeSlice{Owner: owner, Start: start, Stop: stop})
}

// End is the stop time of the last slice, 0 for an empty timeline.
func (t Timeline) End() int64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Stop
}

// Busy sums the length of every non-idle slice.
func (t Timeline) Busy() int64 {
	var busy int64
	for _, s := range t {
		if !s.Owner.Idle {
			busy += s.Stop - s.Start
		}
	}
	return busy
}
