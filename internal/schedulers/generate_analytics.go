package schedulers

import (
	"cpusched/internal/core"
	"cpusched/internal/responses"
	"cpusched/internal/util"
)

// Metrics are the derived performance values of one process. The derived
// fields are only meaningful when Finished is true.
type Metrics struct {
	Name        string
	Order       int
	ArrivalTime int
	BurstTime   int
	Finished    bool

	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// CalculateMetric derives the metrics of one process. It only reads the
// process, so calling it again yields the same values.
func CalculateMetric(p core.ProcessView) Metrics {
	m := Metrics{
		Name:        p.Name(),
		Order:       p.Order(),
		ArrivalTime: p.ArrivalTime(),
		BurstTime:   p.BurstTime(),
		Finished:    p.FinishTime() != core.Unset,
	}

	if !m.Finished {
		return m
	}

	m.TurnaroundTime = p.FinishTime() - p.ArrivalTime()
	m.WaitingTime = m.TurnaroundTime - p.BurstTime()
	m.ResponseTime = p.StartTime() - p.ArrivalTime()

	return m
}

// CalculateMetrics derives the metrics of every process, in input order.
func CalculateMetrics(processes []*core.Process) []Metrics {
	metrics := make([]Metrics, 0, len(processes))
	for _, p := range processes {
		metrics = append(metrics, CalculateMetric(p))
	}

	return metrics
}

// GenerateResponse turns a run result into its API representation with the
// run-level aggregates.
func GenerateResponse(result *Result) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		details = append(details, generateProcessDetails(m))
	}

	averageWaitingTime, averageResponseTime, averageTimeAroundTime :=
		util.CalculateAverage(details)

	var utilization, throughput float64
	if result.Cpu.TotalTime > 0 {
		total := float64(result.Cpu.TotalTime)
		utilization = float64(result.Cpu.UtilizationTime) / total
		throughput = float64(countFinished(result.Metrics)) / total
	}

	response := responses.ScheduleResponse{
		Policy:                result.Config.Policy.String(),
		PolicyName:            result.Config.Policy.DisplayName(),
		RunFor:                result.Config.RunFor,
		FinalTime:             result.FinalTime,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Events:                generateEvents(result.Events),
		Details:               details,
	}
	if result.Config.Policy == core.PolicyRoundRobin {
		response.Quantum = result.Config.Quantum
	}

	return response
}

func generateProcessDetails(m Metrics) responses.ProcessResponse {
	details := responses.ProcessResponse{
		Name:        m.Name,
		ArrivalTime: m.ArrivalTime,
		BurstTime:   m.BurstTime,
		Finished:    m.Finished,
	}

	if m.Finished {
		waiting, turnaround, response :=
			m.WaitingTime, m.TurnaroundTime, m.ResponseTime
		details.WaitingTime = &waiting
		details.TurnAroundTime = &turnaround
		details.ResponseTime = &response
	}

	return details
}

func generateEvents(events []core.Event) []responses.EventResponse {
	out := make([]responses.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, responses.EventResponse{
			Time:    e.Time,
			Kind:    e.Kind.String(),
			Subject: e.Subject,
			Detail:  e.Detail,
		})
	}

	return out
}

func countFinished(metrics []Metrics) int {
	n := 0
	for _, m := range metrics {
		if m.Finished {
			n++
		}
	}

	return n
}
