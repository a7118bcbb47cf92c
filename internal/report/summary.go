package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/responses"
)

// WriteSummary renders a table of per-process metrics with the run-level
// aggregates in the footer.
func WriteSummary(w io.Writer, response responses.ScheduleResponse) {
	title := "Using " + response.PolicyName
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.Name,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			optional(d.WaitingTime),
			optional(d.TurnAroundTime),
			optional(d.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Arrival", "Burst", "Wait", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{
		fmt.Sprintf("Util %.2f", response.CpuUtilization),
		fmt.Sprintf("Idle %d", response.IdleTime),
		fmt.Sprintf("End %d", response.FinalTime),
		fmt.Sprintf("Average %.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average %.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average %.2f", response.AverageResponseTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "Throughput %.2f/t\n", response.CpuThroughput)
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
