package sched

// rrSchedule runs Round-robin with the given quantum over processes in
// arrival order. Processes arriving during a slice join the ready queue
// before the preempted process is put back.
func rrSchedule(processes []Process, quantum int64) Timeline {
	var (
		pending  = runnable(processes)
		gantt    = make(Timeline, 0, 2*len(pending))
		q        = make([]int, 0, len(pending))
		next     int
		currTime int64
		complete int
	)

	admit := func() {
		for next < len(pending) && processes[pending[next]].ArrivalTime <= currTime {
			q = append(q, pending[next])
			next++
		}
	}

	admit()
	for complete != len(pending) {
		if len(q) == 0 {
			arrival := processes[pending[next]].ArrivalTime
			gantt = gantt.Add(Idle, currTime, arrival)
			currTime = arrival
			admit()
			continue
		}

		idx := q[0]
		q = q[1:]
		p := &processes[idx]

		slice := min(quantum, p.BurstDuration)
		start := currTime
		currTime += slice
		p.BurstDuration -= slice
		gantt = gantt.Add(ProcessOwner(p.ProcessID), start, currTime)

		admit()
		if p.BurstDuration > 0 {
			q = append(q, idx)
			continue
		}
		p.complete(currTime)
		complete++
	}

	return gantt
}
