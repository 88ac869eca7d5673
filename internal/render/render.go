// Package render writes simulation results as text: a title banner, a Gantt
// chart and a per-process schedule table.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/sched"
)

// Report writes the title, Gantt chart and schedule table of res.
func Report(w io.Writer, title string, res *sched.Result) {
	Title(w, title)
	Gantt(w, res.Timeline)
	Schedule(w, res)
}

// Title writes title centred between two dashed rules twice its length.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt writes one cell per time slice followed by the slice boundaries.
func Gantt(w io.Writer, gantt sched.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := gantt[i].Owner.String()
		padding := strings.Repeat(" ", max(8-len(label), 0)/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Schedule writes the per-process table with the averages in its footer.
func Schedule(w io.Writer, res *sched.Result) {
	rows := make([][]string, len(res.Processes))
	for i, p := range res.Processes {
		rows[i] = []string{
			fmt.Sprint(p.ProcessID),
			p.Priority.String(),
			fmt.Sprint(p.InitialBurst),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AverageWait),
		fmt.Sprintf("Average\n%.2f", res.AverageTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", res.Throughput)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Makespan: %d\tCPU utilization: %.2f%%\n\n", res.Makespan, res.Utilization*100)
}
