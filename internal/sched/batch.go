package sched

// runnable completes every zero-burst process on arrival and returns the
// indexes of the remaining ones, in the order of processes.
func runnable(processes []Process) []int {
	idx := make([]int, 0, len(processes))
	for i := range processes {
		if processes[i].BurstDuration == 0 {
			processes[i].complete(processes[i].ArrivalTime)
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// batchSchedule runs FCFS, SJF, HRRN, Priority and LJF. processes must be in
// the order established by Order. Each selected process runs to completion;
// the candidate window only widens when the running burst finishes.
func batchSchedule(processes []Process, policy Policy) Timeline {
	var (
		pending  = runnable(processes)
		gantt    = make(Timeline, 0, 2*len(pending))
		currTime int64
	)

	for len(pending) > 0 {
		if arrival := processes[pending[0]].ArrivalTime; arrival > currTime {
			gantt = gantt.Add(Idle, currTime, arrival)
			currTime = arrival
			continue
		}

		window := 1
		for window < len(pending) && processes[pending[window]].ArrivalTime <= currTime {
			window++
		}

		best := 0
		for k := 1; k < window; k++ {
			if policy.outranks(&processes[pending[k]], &processes[pending[best]], currTime) {
				best = k
			}
		}

		p := &processes[pending[best]]
		pending = append(pending[:best], pending[best+1:]...)

		start := currTime
		currTime += p.BurstDuration
		gantt = gantt.Add(ProcessOwner(p.ProcessID), start, currTime)
		p.BurstDuration = 0
		p.complete(currTime)
	}

	return gantt
}
