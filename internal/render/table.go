// Package render prints schedules as text: a title banner, a gantt row and a
// metrics table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/core"
	"schedsim/internal/responses"
)

func OutputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// OutputGantt writes one cell per segment followed by the boundary times.
func OutputGantt(w io.Writer, gantt core.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprint(w, "(empty)\n\n")
		return
	}
	_, _ = fmt.Fprint(w, "|")
	for _, segment := range gantt {
		pid := segment.PID
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, segment := range gantt {
		_, _ = fmt.Fprint(w, formatTime(segment.Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, formatTime(segment.End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// OutputSchedule writes the per-process metrics with averages in the footer.
func OutputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Completion", "Turnaround", "Wait", "Response"})
	for _, detail := range response.Details {
		table.Append([]string{
			detail.ProcessId,
			formatTime(detail.ArrivalTime),
			formatTime(detail.BurstTime),
			formatTime(detail.CompletionTime),
			formatTime(detail.TurnAroundTime),
			formatTime(detail.WaitingTime),
			formatTime(detail.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Utilization\n%.2f%%", response.CpuUtilization*100),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()
}

// OutputComparison writes one summary row per algorithm.
func OutputComparison(w io.Writer, compare responses.CompareResponse) {
	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Total", "Idle", "Throughput"})
	for _, result := range compare.Results {
		table.Append([]string{
			result.Algorithm,
			fmt.Sprintf("%.2f", result.AverageWaitingTime),
			fmt.Sprintf("%.2f", result.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", result.AverageResponseTime),
			formatTime(result.TotalTime),
			formatTime(result.IdleTime),
			fmt.Sprintf("%.2f/t", result.CpuThroughput),
		})
	}
	table.Render()
}

func formatTime(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
