package sched

import (
	"fmt"
	"sort"
)

// Options carries the run parameters that only some policies use.
type Options struct {
	// Quantum is the Round-robin time slice. Ignored by other policies.
	Quantum int64
}

// Result is the outcome of one simulation run.
type Result struct {
	Policy Policy
	// Processes holds the simulated copies, sorted by process id.
	Processes         []Process
	Timeline          Timeline
	AverageWait       float64
	AverageTurnaround float64
	Makespan          int64
	Throughput        float64
	Utilization       float64
}

// ValidateQuantum rejects a Round-robin time slice that is not positive.
func ValidateQuantum(quantum int64) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: %d, must be a positive integer", ErrInvalidQuantum, quantum)
	}
	return nil
}

// Run simulates policy over a copy of processes. Every validation happens
// before the simulation starts; a validated run can not fail.
func Run(policy Policy, processes []Process, opts Options) (*Result, error) {
	if _, ok := policyNames[policy]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(policy))
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}
	if policy.Kind() == Quantum {
		if err := ValidateQuantum(opts.Quantum); err != nil {
			return nil, err
		}
	}
	if policy.RequiresPriority() {
		for i := range processes {
			if _, ok := processes[i].Priority.Value(); !ok {
				return nil, fmt.Errorf("%w: process %d has no priority for %s scheduling",
					ErrMissingPriority, processes[i].ProcessID, policy)
			}
		}
	}

	procs := make([]Process, len(processes))
	copy(procs, processes)
	if err := Order(procs, policy); err != nil {
		return nil, err
	}

	var gantt Timeline
	switch policy.Kind() {
	case Tick:
		gantt = tickSchedule(procs, policy)
	case Quantum:
		gantt = rrSchedule(procs, opts.Quantum)
	default:
		gantt = batchSchedule(procs, policy)
	}

	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ProcessID < procs[j].ProcessID
	})

	res := &Result{
		Policy:    policy,
		Processes: procs,
		Timeline:  gantt,
	}
	res.summarize()
	return res, nil
}
