package core

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Process", func() {
	var p *Process

	BeforeEach(func() {
		p = NewProcess(0, "A", 2, 4)
	})

	It("should start unset", func() {
		Expect(p.RemainingTime()).To(Equal(4))
		Expect(p.StartTime()).To(Equal(Unset))
		Expect(p.FinishTime()).To(Equal(Unset))
		Expect(p.Started()).To(BeFalse())
		Expect(p.Finished()).To(BeFalse())
	})

	It("should record the first dispatch only", func() {
		p.Dispatch(3)
		p.Dispatch(6)

		Expect(p.StartTime()).To(Equal(3))
	})

	It("should panic when dispatched before arrival", func() {
		Expect(func() { p.Dispatch(1) }).To(Panic())
	})

	It("should run and complete", func() {
		p.Dispatch(2)
		p.Run(3)
		Expect(p.RemainingTime()).To(Equal(1))

		p.Run(1)
		p.Complete(6)

		Expect(p.Finished()).To(BeTrue())
		Expect(p.FinishTime()).To(Equal(6))
	})

	It("should panic when running more than remaining", func() {
		p.Dispatch(2)
		Expect(func() { p.Run(5) }).To(Panic())
	})

	It("should panic when running before dispatch", func() {
		Expect(func() { p.Run(1) }).To(Panic())
	})

	It("should panic when completed early", func() {
		p.Dispatch(2)
		p.Run(1)
		Expect(func() { p.Complete(3) }).To(Panic())
	})

	It("should reset the run-state", func() {
		p.Dispatch(2)
		p.Run(4)
		p.Complete(6)

		p.Reset()

		Expect(p.RemainingTime()).To(Equal(4))
		Expect(p.Started()).To(BeFalse())
		Expect(p.Finished()).To(BeFalse())
	})
})

var _ = Describe("Clock and CPU", func() {
	It("should not pass the horizon", func() {
		clock := NewClock(5)
		clock.Advance(3)

		Expect(clock.Now()).To(Equal(3))
		Expect(clock.Remaining()).To(Equal(2))
		Expect(func() { clock.Advance(3) }).To(Panic())

		clock.Advance(2)
		Expect(clock.Expired()).To(BeTrue())
	})

	It("should account busy and idle time", func() {
		clock := NewClock(10)
		cpu := NewCPU(clock)
		p := NewProcess(0, "A", 0, 3)

		cpu.Idle()
		p.Dispatch(clock.Now())
		cpu.Execute(p, 3)

		Expect(cpu.Metric()).To(Equal(CpuMetric{
			TotalTime:       4,
			UtilizationTime: 3,
			IdleTime:        1,
		}))
		Expect(p.RemainingTime()).To(BeZero())
	})
})

var _ = Describe("SimulationConfig", func() {
	It("should parse policy names", func() {
		for name, want := range map[string]Policy{
			"fcfs": PolicyFCFS,
			"sjf":  PolicySRTF,
			"SRTF": PolicySRTF,
			"rr":   PolicyRoundRobin,
		} {
			got, err := ParsePolicy(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		}

		_, err := ParsePolicy("lottery")
		Expect(errors.Is(err, ErrUnknownPolicy)).To(BeTrue())
	})

	It("should require a quantum for round-robin only", func() {
		Expect(SimulationConfig{Policy: PolicyFCFS, RunFor: 10}.Validate()).
			To(Succeed())
		Expect(SimulationConfig{Policy: PolicyRoundRobin, RunFor: 10}.Validate()).
			To(MatchError(ErrInvalidQuantum))
		Expect(SimulationConfig{Policy: PolicyRoundRobin, RunFor: 10, Quantum: 2}.Validate()).
			To(Succeed())
	})

	It("should require a positive horizon", func() {
		Expect(SimulationConfig{Policy: PolicySRTF}.Validate()).
			To(MatchError(ErrInvalidHorizon))
	})

	It("should reject invalid processes", func() {
		Expect(ValidateProcesses([]*Process{NewProcess(0, "A", 0, 0)})).
			To(MatchError(ErrInvalidProcess))
		Expect(ValidateProcesses([]*Process{NewProcess(0, "A", -1, 2)})).
			To(MatchError(ErrInvalidProcess))
		Expect(ValidateProcesses([]*Process{
			NewProcess(0, "A", 0, 2),
			NewProcess(1, "A", 1, 2),
		})).To(MatchError(ErrDuplicateName))
	})
})
