package schedulers

import (
	"fmt"
	"log"

	"cpusched/internal/core"
)

// Result is everything a run produced.
type Result struct {
	Config    core.SimulationConfig
	Processes []*core.Process
	Events    []core.Event
	Metrics   []Metrics
	Cpu       core.CpuMetric
	FinalTime int
}

// Simulator runs one scheduling policy over a set of processes.
type Simulator struct {
	*core.HookableBase

	config core.SimulationConfig
	policy Policy
}

// NewSimulator validates the configuration and creates a simulator for it.
func NewSimulator(config core.SimulationConfig) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	policy, err := NewPolicy(config)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		HookableBase: core.NewHookableBase(),
		config:       config,
		policy:       policy,
	}, nil
}

// Simulate is a shortcut that creates a simulator and runs it once.
func Simulate(
	config core.SimulationConfig,
	processes []*core.Process,
) (*Result, error) {
	s, err := NewSimulator(config)
	if err != nil {
		return nil, err
	}

	return s.Run(processes)
}

// Run simulates the processes until all of them finished or the horizon is
// reached. The run-state of the processes is reset before the run and left
// finalized afterwards. Hooks registered on the simulator observe every
// appended event.
func (s *Simulator) Run(processes []*core.Process) (*Result, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}

	for _, p := range processes {
		p.Reset()
	}

	events := core.NewEventLog()
	for _, h := range s.Hooks {
		events.AcceptHook(h)
	}

	clock := core.NewClock(s.config.RunFor)
	cpu := core.NewCPU(clock)
	arrivals := core.NewArrivalQueue(processes)
	ready := core.NewReadySet()

	log.Printf("running %s with %d processes for %d units",
		s.policy.Kind(), len(processes), s.config.RunFor)

	var prev core.ProcessView
	finished := 0

	for !clock.Expired() && finished < len(processes) {
		arrivals.AdmitUntil(clock.Now(), ready, events)

		decision := s.policy.Decide(clock.Now(), ready, prev)
		if decision.Idle() {
			events.Append(core.Event{Time: clock.Now(), Kind: core.EventIdle})
			cpu.Idle()
			prev = nil
			continue
		}

		if decision.Slice <= 0 {
			panic(fmt.Sprintf("policy %s granted a slice of %d",
				s.policy.Kind(), decision.Slice))
		}

		p := ready.Take(decision.Index)
		p.Dispatch(clock.Now())

		if decision.Announce {
			events.Append(core.Event{
				Time:    clock.Now(),
				Kind:    core.EventSelected,
				Subject: p.Name(),
				Detail:  p.RemainingTime(),
			})
		}

		cpu.Execute(p, min(decision.Slice, clock.Remaining()))

		// Processes that arrived during the slice queue up before the
		// preempted process comes back.
		arrivals.AdmitUntil(clock.Now(), ready, events)

		if p.RemainingTime() == 0 {
			p.Complete(clock.Now())
			events.Append(core.Event{
				Time:    clock.Now(),
				Kind:    core.EventFinished,
				Subject: p.Name(),
			})
			finished++
		} else {
			ready.Push(p)
		}

		prev = p
	}

	arrivals.AdmitUntil(clock.Now(), ready, events)

	if s.config.FillHorizon {
		for !clock.Expired() {
			events.Append(core.Event{Time: clock.Now(), Kind: core.EventIdle})
			cpu.Idle()
		}
	}

	events.Append(core.Event{Time: clock.Now(), Kind: core.EventRunEnded})

	log.Printf("%s finished at time %d, %d of %d processes completed",
		s.policy.Kind(), clock.Now(), finished, len(processes))

	return &Result{
		Config:    s.config,
		Processes: processes,
		Events:    events.Events(),
		Metrics:   CalculateMetrics(processes),
		Cpu:       cpu.Metric(),
		FinalTime: clock.Now(),
	}, nil
}
