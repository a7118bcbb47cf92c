package schedulers

import (
	"cpusched/internal/core"
)

// RoundRobin serves the ready set as a FIFO queue and grants each dispatch
// at most TimeQuantum units. The driver puts a preempted process back at the
// tail after the processes that arrived during its slice.
type RoundRobin struct {
	TimeQuantum int
}

func (RoundRobin) Kind() core.Policy {
	return core.PolicyRoundRobin
}

func (r RoundRobin) Decide(
	now int,
	ready core.ReadyView,
	prev core.ProcessView,
) Decision {
	if ready.Len() == 0 {
		return idle
	}

	return Decision{
		Index:    0,
		Slice:    min(r.TimeQuantum, ready.At(0).RemainingTime()),
		Announce: true,
	}
}
