package sched

// tickSchedule runs SRTF, LRTF and preemptive Priority one time unit at a
// time. processes must be in the order established by Order; BurstDuration is
// consumed as the remaining burst.
func tickSchedule(processes []Process, policy Policy) Timeline {
	var (
		pending  = runnable(processes)
		gantt    = make(Timeline, 0, 2*len(pending))
		currTime int64
		complete int
	)

	for complete != len(pending) {
		selected := -1
		for _, i := range pending {
			p := &processes[i]
			if p.ArrivalTime > currTime || p.BurstDuration == 0 {
				continue
			}
			if selected < 0 || policy.outranks(p, &processes[selected], currTime) {
				selected = i
			}
		}

		if selected < 0 {
			next := nextArrival(processes, pending, currTime)
			gantt = gantt.Add(Idle, currTime, next)
			currTime = next
			continue
		}

		p := &processes[selected]
		p.BurstDuration--
		gantt = gantt.Add(ProcessOwner(p.ProcessID), currTime, currTime+1)
		currTime++

		if p.BurstDuration == 0 {
			p.complete(currTime)
			complete++
		}
	}

	return gantt
}

// nextArrival is the earliest arrival after now of a process that still has
// burst left. Idle stretches are emitted in one step instead of tick by tick;
// the merged timeline is the same.
func nextArrival(processes []Process, pending []int, now int64) int64 {
	next := int64(-1)
	for _, i := range pending {
		p := &processes[i]
		if p.BurstDuration > 0 && p.ArrivalTime > now && (next < 0 || p.ArrivalTime < next) {
			next = p.ArrivalTime
		}
	}
	return next
}
