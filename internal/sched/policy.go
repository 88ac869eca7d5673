package sched

import (
	"fmt"
	"strings"
)

// Policy selects the scheduling algorithm of a run.
type Policy int

const (
	FCFS Policy = iota
	SJF
	HRRN
	PriorityNP
	LJF
	SRTF
	PriorityPreemptive
	LRTF
	RoundRobin
)

// Kind is the preemption granularity of a policy.
type Kind int

const (
	// Batch policies run each selected process to completion.
	Batch Kind = iota
	// Tick policies reselect after every time unit.
	Tick
	// Quantum policies reselect after every time slice.
	Quantum
)

// Policies lists every policy in the order they are reported.
var Policies = []Policy{FCFS, SJF, HRRN, PriorityNP, LJF, SRTF, PriorityPreemptive, LRTF, RoundRobin}

var policyNames = map[Policy]string{
	FCFS:               "fcfs",
	SJF:                "sjf",
	HRRN:               "hrrn",
	PriorityNP:         "priority",
	LJF:                "ljf",
	SRTF:               "srtf",
	PriorityPreemptive: "priority-preemptive",
	LRTF:               "lrtf",
	RoundRobin:         "rr",
}

var policyTitles = map[Policy]string{
	FCFS:               "First-come, first-serve",
	SJF:                "Shortest-job-first",
	HRRN:               "Highest-response-ratio-next",
	PriorityNP:         "Priority",
	LJF:                "Longest-job-first",
	SRTF:               "Shortest-remaining-time-first",
	PriorityPreemptive: "Priority (preemptive)",
	LRTF:               "Longest-remaining-time-first",
	RoundRobin:         "Round-robin",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Title is the human readable policy name.
func (p Policy) Title() string { return policyTitles[p] }

// ParsePolicy maps a policy name, as returned by String, back to its Policy.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Kind reports how often the policy reselects the running process.
func (p Policy) Kind() Kind {
	switch p {
	case SRTF, PriorityPreemptive, LRTF:
		return Tick
	case RoundRobin:
		return Quantum
	default:
		return Batch
	}
}

// RequiresPriority reports whether every process needs a priority to be
// scheduled by p.
func (p Policy) RequiresPriority() bool {
	return p == PriorityNP || p == PriorityPreemptive
}

// outranks reports whether a must be selected over b at time now. Equal
// candidates never outrank each other so the leftmost one wins.
func (p Policy) outranks(a, b *Process, now int64) bool {
	switch p {
	case SJF, SRTF:
		return a.BurstDuration < b.BurstDuration
	case LJF, LRTF:
		return a.BurstDuration > b.BurstDuration
	case PriorityNP, PriorityPreemptive:
		return a.priorityValue() < b.priorityValue()
	case HRRN:
		return responseRatio(a, now) > responseRatio(b, now)
	default:
		return false
	}
}

// responseRatio is 1 + wait/burst for a process that has waited since its
// arrival until now.
func responseRatio(p *Process, now int64) float64 {
	return 1 + float64(now-p.ArrivalTime)/float64(p.BurstDuration)
}
