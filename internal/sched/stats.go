package sched

// summarize fills the aggregate statistics from the per-process results and
// the timeline.
func (r *Result) summarize() {
	var totalWait, totalTurnaround float64
	for i := range r.Processes {
		totalWait += float64(r.Processes[i].WaitTime)
		totalTurnaround += float64(r.Processes[i].TurnaroundTime)
	}

	count := float64(len(r.Processes))
	if count > 0 {
		r.AverageWait = totalWait / count
		r.AverageTurnaround = totalTurnaround / count
	}

	r.Makespan = r.Timeline.End()
	if r.Makespan > 0 {
		r.Throughput = count / float64(r.Makespan)
		r.Utilization = float64(r.Timeline.Busy()) / float64(r.Makespan)
	}
}
