package schedulers

import (
	"fmt"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cpusched/internal/core"
)

type countingHook struct {
	count int
}

func (h *countingHook) Func(ctx core.HookCtx) {
	if ctx.Pos == core.HookPosEventAppended {
		h.count++
	}
}

func randomJobs(seed int64, n int) []job {
	r := rand.New(rand.NewSource(seed))

	jobs := make([]job, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, job{
			name:    fmt.Sprintf("P%02d", i),
			arrival: r.Intn(20),
			burst:   1 + r.Intn(8),
		})
	}

	return jobs
}

var _ = Describe("Simulator", func() {
	configs := []core.SimulationConfig{
		{Policy: core.PolicyFCFS, RunFor: 40},
		{Policy: core.PolicySRTF, RunFor: 40},
		{Policy: core.PolicyRoundRobin, RunFor: 40, Quantum: 3},
		{Policy: core.PolicyFCFS, RunFor: 15},
		{Policy: core.PolicySRTF, RunFor: 15},
		{Policy: core.PolicyRoundRobin, RunFor: 15, Quantum: 1},
	}

	for _, config := range configs {
		config := config

		Context(fmt.Sprintf("with %s for %d units", config.Policy, config.RunFor), func() {
			var (
				processes []*core.Process
				result    *Result
			)

			BeforeEach(func() {
				var err error
				processes = makeProcesses(randomJobs(7, 8)...)
				result, err = Simulate(config, processes)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should keep event times ordered and within the horizon", func() {
				for i := 1; i < len(result.Events); i++ {
					Expect(result.Events[i].Time).To(
						BeNumerically(">=", result.Events[i-1].Time))
				}

				last := result.Events[len(result.Events)-1]
				Expect(last.Kind).To(Equal(core.EventRunEnded))
				Expect(last.Time).To(Equal(result.FinalTime))
				Expect(result.FinalTime).To(BeNumerically("<=", config.RunFor))
			})

			It("should account every unit of time", func() {
				executed := 0
				for _, p := range processes {
					executed += p.BurstTime() - p.RemainingTime()
				}

				Expect(result.Cpu.UtilizationTime).To(Equal(executed))
				Expect(result.Cpu.UtilizationTime + result.Cpu.IdleTime).
					To(Equal(result.Cpu.TotalTime))
				Expect(result.Cpu.TotalTime).To(Equal(result.FinalTime))
			})

			It("should execute the whole burst of finished processes", func() {
				for _, p := range processes {
					if p.Finished() {
						Expect(p.RemainingTime()).To(BeZero())
						Expect(p.FinishTime() - p.StartTime()).
							To(BeNumerically(">=", p.BurstTime()))
					} else {
						Expect(p.RemainingTime()).To(BeNumerically(">", 0))
					}
				}
			})

			It("should log each arrival and finish once", func() {
				arrivals := map[string]int{}
				finishes := map[string]int{}
				for _, e := range result.Events {
					switch e.Kind {
					case core.EventArrived:
						arrivals[e.Subject]++
					case core.EventFinished:
						finishes[e.Subject]++
					}
				}

				for _, p := range processes {
					if p.ArrivalTime() <= result.FinalTime {
						Expect(arrivals[p.Name()]).To(Equal(1), p.Name())
					} else {
						Expect(arrivals[p.Name()]).To(BeZero(), p.Name())
					}

					if p.Finished() {
						Expect(finishes[p.Name()]).To(Equal(1), p.Name())
					} else {
						Expect(finishes[p.Name()]).To(BeZero(), p.Name())
					}
				}
			})

			It("should set a non-negative response time", func() {
				for _, m := range result.Metrics {
					if m.Finished {
						Expect(m.ResponseTime).To(BeNumerically(">=", 0))
						Expect(m.WaitingTime).To(BeNumerically(">=", 0))
						Expect(m.TurnaroundTime).To(
							Equal(m.WaitingTime + m.BurstTime))
					}
				}
			})

			It("should be deterministic", func() {
				again, err := Simulate(config, makeProcesses(randomJobs(7, 8)...))
				Expect(err).NotTo(HaveOccurred())

				Expect(again.Events).To(Equal(result.Events))
				Expect(again.Metrics).To(Equal(result.Metrics))
			})

			It("should derive the same metrics twice", func() {
				Expect(CalculateMetrics(processes)).To(Equal(result.Metrics))
				Expect(CalculateMetrics(processes)).To(Equal(result.Metrics))
			})
		})
	}

	It("should report unfinished processes when the horizon is too short", func() {
		result, err := Simulate(core.SimulationConfig{
			Policy: core.PolicySRTF,
			RunFor: 5,
		}, makeProcesses(job{"A", 0, 4}, job{"B", 0, 4}, job{"C", 9, 1}))
		Expect(err).NotTo(HaveOccurred())

		Expect(metricsOf(result, "A").Finished).To(BeTrue())
		Expect(metricsOf(result, "B")).To(Equal(Metrics{
			Name: "B", Order: 1, BurstTime: 4,
		}))
		Expect(metricsOf(result, "C").Finished).To(BeFalse())
		Expect(result.FinalTime).To(Equal(5))
	})

	It("should end when the last process finishes", func() {
		result, err := Simulate(core.SimulationConfig{
			Policy: core.PolicyFCFS,
			RunFor: 100,
		}, makeProcesses(job{"A", 0, 2}))
		Expect(err).NotTo(HaveOccurred())

		Expect(result.FinalTime).To(Equal(2))
	})

	It("should fill the horizon with idle units when asked", func() {
		result, err := Simulate(core.SimulationConfig{
			Policy:      core.PolicyFCFS,
			RunFor:      5,
			FillHorizon: true,
		}, makeProcesses(job{"A", 0, 2}))
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Events).To(Equal([]core.Event{
			arrived(0, "A"),
			selected(0, "A", 2),
			finished(2, "A"),
			idleAt(2),
			idleAt(3),
			idleAt(4),
			ended(5),
		}))
		Expect(result.Cpu.IdleTime).To(Equal(3))
	})

	It("should end at time zero without processes", func() {
		result, err := Simulate(core.SimulationConfig{
			Policy: core.PolicySRTF,
			RunFor: 3,
		}, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Events).To(Equal([]core.Event{ended(0)}))
	})

	It("should reuse process records across runs", func() {
		processes := makeProcesses(job{"A", 0, 3}, job{"B", 1, 2})

		first, err := Simulate(core.SimulationConfig{
			Policy: core.PolicyFCFS, RunFor: 10,
		}, processes)
		Expect(err).NotTo(HaveOccurred())
		firstMetrics := first.Metrics

		_, err = Simulate(core.SimulationConfig{
			Policy: core.PolicyRoundRobin, RunFor: 10, Quantum: 1,
		}, processes)
		Expect(err).NotTo(HaveOccurred())

		third, err := Simulate(core.SimulationConfig{
			Policy: core.PolicyFCFS, RunFor: 10,
		}, processes)
		Expect(err).NotTo(HaveOccurred())
		Expect(third.Metrics).To(Equal(firstMetrics))
	})

	It("should invoke hooks for every event", func() {
		simulator, err := NewSimulator(core.SimulationConfig{
			Policy: core.PolicyRoundRobin, RunFor: 10, Quantum: 2,
		})
		Expect(err).NotTo(HaveOccurred())

		hook := &countingHook{}
		simulator.AcceptHook(hook)

		result, err := simulator.Run(makeProcesses(job{"A", 0, 3}))
		Expect(err).NotTo(HaveOccurred())
		Expect(hook.count).To(Equal(len(result.Events)))
	})

	It("should refuse an invalid configuration", func() {
		_, err := NewSimulator(core.SimulationConfig{
			Policy: core.PolicyRoundRobin, RunFor: 10,
		})
		Expect(err).To(MatchError(core.ErrInvalidQuantum))

		_, err = NewSimulator(core.SimulationConfig{
			Policy: core.PolicyFCFS, RunFor: 0,
		})
		Expect(err).To(MatchError(core.ErrInvalidHorizon))

		_, err = Simulate(core.SimulationConfig{
			Policy: core.PolicyFCFS, RunFor: 5,
		}, makeProcesses(job{"A", 0, 1}, job{"A", 1, 1}))
		Expect(err).To(MatchError(core.ErrDuplicateName))
	})
})
