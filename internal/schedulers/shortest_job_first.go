package schedulers

import (
	"cpusched/internal/core"
)

// ShortestRemainingTimeFirst is the preemptive shortest-job-first policy. It
// is consulted every time unit, so a shorter arrival takes the processor at
// the next unit boundary.
type ShortestRemainingTimeFirst struct{}

func (ShortestRemainingTimeFirst) Kind() core.Policy {
	return core.PolicySRTF
}

func (ShortestRemainingTimeFirst) Decide(
	now int,
	ready core.ReadyView,
	prev core.ProcessView,
) Decision {
	if ready.Len() == 0 {
		return idle
	}

	shortest := 0
	for i := 1; i < ready.Len(); i++ {
		if shorterJob(ready.At(i), ready.At(shortest)) {
			shortest = i
		}
	}

	p := ready.At(shortest)
	switched := prev == nil || prev.Order() != p.Order()
	fresh := p.RemainingTime() == p.BurstTime()

	return Decision{
		Index:    shortest,
		Slice:    1,
		Announce: switched || fresh,
	}
}

// shorterJob orders by remaining time, then arrival time, then input order.
func shorterJob(a, b core.ProcessView) bool {
	if a.RemainingTime() != b.RemainingTime() {
		return a.RemainingTime() < b.RemainingTime()
	}
	return arrivedEarlier(a, b)
}
