package requests

import "cpusched/internal/core"

type Job struct {
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

type ScheduleRequests struct {
	RunFor      int   `json:"run_for"`
	Quantum     int   `json:"quantum"`
	FillHorizon bool  `json:"fill_horizon"`
	Jobs        []Job `json:"processes"`
}

// Processes builds fresh process records from the jobs, in request order.
func (r *ScheduleRequests) Processes() []*core.Process {
	processes := make([]*core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		processes = append(processes,
			core.NewProcess(i, job.Name, job.ArrivalTime, job.BurstTime))
	}

	return processes
}

// Config builds the simulation configuration for the given policy.
// defaultQuantum is used by round-robin when the request has no quantum.
func (r *ScheduleRequests) Config(policy core.Policy, defaultQuantum int) core.SimulationConfig {
	config := core.SimulationConfig{
		Policy:      policy,
		RunFor:      r.RunFor,
		FillHorizon: r.FillHorizon,
	}

	if policy == core.PolicyRoundRobin {
		config.Quantum = r.Quantum
		if config.Quantum == 0 {
			config.Quantum = defaultQuantum
		}
	}

	return config
}
