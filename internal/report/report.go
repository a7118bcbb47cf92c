// Package report formats the result of a run as text.
package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"cpusched/internal/core"
	"cpusched/internal/schedulers"
)

// DefaultExtension is the extension of report files.
const DefaultExtension = ".out"

// Write renders the report of a run: a header, one line per event in log
// order, and one line per process ordered by process name.
func Write(w io.Writer, result *schedulers.Result) error {
	b := new(bytes.Buffer)

	fmt.Fprintf(b, "%d processes\n", len(result.Processes))
	fmt.Fprintf(b, "Using %s\n", result.Config.Policy.DisplayName())
	if result.Config.Policy == core.PolicyRoundRobin {
		fmt.Fprintf(b, "Quantum %d\n", result.Config.Quantum)
	}
	b.WriteString("\n")

	for _, evt := range result.Events {
		b.WriteString(FormatEvent(evt))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, m := range byName(result.Metrics) {
		b.WriteString(FormatMetrics(m))
		b.WriteString("\n")
	}

	_, err := w.Write(b.Bytes())
	return err
}

// Format returns the report as a string.
func Format(result *schedulers.Result) string {
	var sb strings.Builder
	_ = Write(&sb, result)
	return sb.String()
}

// FormatEvent renders one event line.
func FormatEvent(evt core.Event) string {
	switch evt.Kind {
	case core.EventArrived:
		return fmt.Sprintf("Time %4d : %s arrived", evt.Time, evt.Subject)
	case core.EventSelected:
		return fmt.Sprintf("Time %4d : %s selected (burst %d)",
			evt.Time, evt.Subject, evt.Detail)
	case core.EventFinished:
		return fmt.Sprintf("Time %4d : %s finished", evt.Time, evt.Subject)
	case core.EventIdle:
		return fmt.Sprintf("Time %4d : Idle", evt.Time)
	case core.EventRunEnded:
		return fmt.Sprintf("Finished at time %d", evt.Time)
	}

	return fmt.Sprintf("Time %4d : %s", evt.Time, evt.Kind)
}

// FormatMetrics renders the metrics line of one process.
func FormatMetrics(m schedulers.Metrics) string {
	if !m.Finished {
		return fmt.Sprintf("%s did not finish", m.Name)
	}

	return fmt.Sprintf("%s wait %4d turnaround %4d response %4d",
		m.Name, m.WaitingTime, m.TurnaroundTime, m.ResponseTime)
}

// OutputPath derives the report path from the input path by replacing its
// extension.
func OutputPath(inputPath, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}

	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}

func byName(metrics []schedulers.Metrics) []schedulers.Metrics {
	sorted := make([]schedulers.Metrics, len(metrics))
	copy(sorted, metrics)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}
