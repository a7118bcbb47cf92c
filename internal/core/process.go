package core

import "log"

// Unset marks a start or finish time that has not been reached yet.
const Unset = -1

// ProcessView is the read-only side of a process. Scheduling policies only
// ever see processes through this interface.
type ProcessView interface {
	Name() string
	Order() int
	ArrivalTime() int
	BurstTime() int
	RemainingTime() int
	StartTime() int
	FinishTime() int
}

// Process is a process record. The description (name, arrival, burst) is
// fixed at creation, the run-state is mutated by the run driver only.
type Process struct {
	name    string
	order   int
	arrival int
	burst   int

	remaining int
	start     int
	finish    int
}

// NewProcess creates a process record. Order is the position of the process
// in the original input and acts as the final tie-break everywhere.
func NewProcess(order int, name string, arrival, burst int) *Process {
	return &Process{
		name:      name,
		order:     order,
		arrival:   arrival,
		burst:     burst,
		remaining: burst,
		start:     Unset,
		finish:    Unset,
	}
}

func (p *Process) Name() string       { return p.name }
func (p *Process) Order() int         { return p.order }
func (p *Process) ArrivalTime() int   { return p.arrival }
func (p *Process) BurstTime() int     { return p.burst }
func (p *Process) RemainingTime() int { return p.remaining }
func (p *Process) StartTime() int     { return p.start }
func (p *Process) FinishTime() int    { return p.finish }

// Started reports whether the process has ever been dispatched.
func (p *Process) Started() bool { return p.start != Unset }

// Finished reports whether the process has completed its burst.
func (p *Process) Finished() bool { return p.finish != Unset }

// Dispatch records the first dispatch of the process. Later calls are
// no-ops so the response time is fixed once.
func (p *Process) Dispatch(now int) {
	if p.Started() {
		return
	}

	if now < p.arrival {
		log.Panicf("process %s dispatched at %d before its arrival at %d",
			p.name, now, p.arrival)
	}

	p.start = now
}

// Run consumes units of CPU time. The process must have been dispatched.
func (p *Process) Run(units int) {
	if !p.Started() {
		log.Panicf("process %s runs without being dispatched", p.name)
	}

	if units <= 0 || units > p.remaining {
		log.Panicf("process %s cannot run %d units with %d remaining",
			p.name, units, p.remaining)
	}

	p.remaining -= units
}

// Complete stamps the finish time once the remaining time reached zero.
func (p *Process) Complete(now int) {
	if p.remaining != 0 {
		log.Panicf("process %s completed with %d units remaining",
			p.name, p.remaining)
	}

	if p.Finished() {
		log.Panicf("process %s completed twice", p.name)
	}

	p.finish = now
}

// Reset brings the run-state back to its initial values so that the same
// records can be simulated again.
func (p *Process) Reset() {
	p.remaining = p.burst
	p.start = Unset
	p.finish = Unset
}
