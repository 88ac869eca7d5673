package sched

import (
	"fmt"
	"sort"
)

// Order stably sorts processes by arrival time. Processes arriving together
// are ordered by the secondary key of the policy:
//   - SJF, HRRN, SRTF: ascending burst
//   - LJF, LRTF: descending burst
//   - Priority, preemptive Priority: ascending priority
//   - FCFS, Round-robin: input order
func Order(processes []Process, policy Policy) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: no processes to order", ErrInvalidInput)
	}

	sort.SliceStable(processes, func(i, j int) bool {
		a, b := &processes[i], &processes[j]
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		switch policy {
		case SJF, HRRN, SRTF:
			return a.BurstDuration < b.BurstDuration
		case LJF, LRTF:
			return a.BurstDuration > b.BurstDuration
		case PriorityNP, PriorityPreemptive:
			return a.priorityValue() < b.priorityValue()
		default:
			return false
		}
	})

	return nil
}
