package core

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects the scheduling algorithm of a run.
type Policy int

const (
	PolicyFCFS Policy = iota
	PolicySRTF
	PolicyRoundRobin
)

var (
	ErrUnknownPolicy  = errors.New("unknown scheduling policy")
	ErrInvalidHorizon = errors.New("run duration must be positive")
	ErrInvalidQuantum = errors.New("quantum must be positive for round-robin")
	ErrInvalidProcess = errors.New("invalid process")
	ErrDuplicateName  = errors.New("duplicate process name")
)

// ParsePolicy maps the directive value of a `use` line to a policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs":
		return PolicyFCFS, nil
	case "sjf", "srtf":
		return PolicySRTF, nil
	case "rr":
		return PolicyRoundRobin, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// String returns the short name used in input files.
func (p Policy) String() string {
	switch p {
	case PolicyFCFS:
		return "fcfs"
	case PolicySRTF:
		return "sjf"
	case PolicyRoundRobin:
		return "rr"
	}

	return fmt.Sprintf("policy(%d)", int(p))
}

// DisplayName returns the human-readable policy name used in reports.
func (p Policy) DisplayName() string {
	switch p {
	case PolicyFCFS:
		return "First-Come First-Served"
	case PolicySRTF:
		return "preemptive Shortest Job First"
	case PolicyRoundRobin:
		return "Round-Robin"
	}

	return p.String()
}

// SimulationConfig is the immutable configuration of one run.
type SimulationConfig struct {
	Policy  Policy
	RunFor  int
	Quantum int

	// FillHorizon keeps the run going with idle units until RunFor even when
	// every process finished earlier.
	FillHorizon bool
}

// Validate checks the configuration before a run.
func (c SimulationConfig) Validate() error {
	switch c.Policy {
	case PolicyFCFS, PolicySRTF:
	case PolicyRoundRobin:
		if c.Quantum <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidQuantum, c.Quantum)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, int(c.Policy))
	}

	if c.RunFor <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, c.RunFor)
	}

	return nil
}

// ValidateProcesses checks the process descriptions of a run.
func ValidateProcesses(processes []*Process) error {
	names := make(map[string]bool, len(processes))

	for _, p := range processes {
		if p.Name() == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidProcess)
		}

		if p.ArrivalTime() < 0 {
			return fmt.Errorf("%w: %s has negative arrival %d",
				ErrInvalidProcess, p.Name(), p.ArrivalTime())
		}

		if p.BurstTime() <= 0 {
			return fmt.Errorf("%w: %s has non-positive burst %d",
				ErrInvalidProcess, p.Name(), p.BurstTime())
		}

		if names[p.Name()] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, p.Name())
		}

		names[p.Name()] = true
	}

	return nil
}
