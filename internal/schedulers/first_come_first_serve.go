package schedulers

import (
	"cpusched/internal/core"
)

// FirstComeFirstServe is the non-preemptive first-come-first-served policy.
// The earliest arrived process runs to completion once dispatched.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Kind() core.Policy {
	return core.PolicyFCFS
}

func (FirstComeFirstServe) Decide(
	now int,
	ready core.ReadyView,
	prev core.ProcessView,
) Decision {
	if ready.Len() == 0 {
		return idle
	}

	first := 0
	for i := 1; i < ready.Len(); i++ {
		if arrivedEarlier(ready.At(i), ready.At(first)) {
			first = i
		}
	}

	return Decision{
		Index:    first,
		Slice:    ready.At(first).RemainingTime(),
		Announce: true,
	}
}
