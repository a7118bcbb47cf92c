package schedulers

import (
	"fmt"

	"cpusched/internal/core"
)

// Decision is what a policy wants the processor to do at the current time.
type Decision struct {
	// Index is the position of the chosen process in the ready set, or -1
	// when the processor should idle.
	Index int

	// Slice is the number of units the chosen process may run before the
	// policy is consulted again.
	Slice int

	// Announce tells the driver to log a selected event for this dispatch.
	Announce bool
}

var idle = Decision{Index: -1}

// Idle reports whether no process was chosen.
func (d Decision) Idle() bool {
	return d.Index < 0
}

// Policy is a scheduling algorithm. Policies are pure decision functions:
// they look at the ready set and the process that ran in the previous step
// and never mutate either.
type Policy interface {
	Kind() core.Policy
	Decide(now int, ready core.ReadyView, prev core.ProcessView) Decision
}

// NewPolicy returns the policy configured for a run.
func NewPolicy(config core.SimulationConfig) (Policy, error) {
	switch config.Policy {
	case core.PolicyFCFS:
		return FirstComeFirstServe{}, nil
	case core.PolicySRTF:
		return ShortestRemainingTimeFirst{}, nil
	case core.PolicyRoundRobin:
		if config.Quantum <= 0 {
			return nil, fmt.Errorf("%w: got %d",
				core.ErrInvalidQuantum, config.Quantum)
		}
		return RoundRobin{TimeQuantum: config.Quantum}, nil
	}

	return nil, fmt.Errorf("%w: %d", core.ErrUnknownPolicy, int(config.Policy))
}

// arrivedEarlier orders by arrival time and then by input order.
func arrivedEarlier(a, b core.ProcessView) bool {
	if a.ArrivalTime() != b.ArrivalTime() {
		return a.ArrivalTime() < b.ArrivalTime()
	}
	return a.Order() < b.Order()
}
