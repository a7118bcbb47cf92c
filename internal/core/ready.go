package core

import (
	"log"
	"sort"
)

// ReadyView is the read-only view of the ready set handed to policies.
type ReadyView interface {
	Len() int
	At(i int) ProcessView
}

// ReadySet holds the arrived but unfinished processes that are not running,
// in the order they joined.
type ReadySet struct {
	items []*Process
}

// NewReadySet creates an empty ready set.
func NewReadySet() *ReadySet {
	return &ReadySet{items: make([]*Process, 0)}
}

// Len returns the number of waiting processes.
func (r *ReadySet) Len() int {
	return len(r.items)
}

// At returns the process at position i without removing it.
func (r *ReadySet) At(i int) ProcessView {
	return r.items[i]
}

// Push appends the process at the tail.
func (r *ReadySet) Push(p *Process) {
	r.items = append(r.items, p)
}

// Take removes and returns the process at position i.
func (r *ReadySet) Take(i int) *Process {
	if i < 0 || i >= len(r.items) {
		log.Panicf("ready set has no entry %d, size %d", i, len(r.items))
	}

	p := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)

	return p
}

// ArrivalQueue is the pending pool of processes that have not arrived yet,
// sorted by arrival time with ties broken by input order.
type ArrivalQueue struct {
	pending []*Process
	next    int
}

// NewArrivalQueue creates the pending pool from processes in input order.
func NewArrivalQueue(processes []*Process) *ArrivalQueue {
	pending := make([]*Process, len(processes))
	copy(pending, processes)

	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].ArrivalTime() != pending[j].ArrivalTime() {
			return pending[i].ArrivalTime() < pending[j].ArrivalTime()
		}
		return pending[i].Order() < pending[j].Order()
	})

	return &ArrivalQueue{pending: pending}
}

// Pending returns the number of processes not admitted yet.
func (q *ArrivalQueue) Pending() int {
	return len(q.pending) - q.next
}

// NextArrival returns the arrival time of the next pending process.
func (q *ArrivalQueue) NextArrival() (int, bool) {
	if q.next >= len(q.pending) {
		return 0, false
	}

	return q.pending[q.next].ArrivalTime(), true
}

// AdmitUntil moves every pending process that arrived at or before t into
// the ready set. Each admission logs an arrived event stamped with the
// arrival time of the process. It returns the number of admitted processes.
func (q *ArrivalQueue) AdmitUntil(t int, ready *ReadySet, events *EventLog) int {
	admitted := 0

	for q.next < len(q.pending) && q.pending[q.next].ArrivalTime() <= t {
		p := q.pending[q.next]
		q.next++

		events.Append(Event{
			Time:    p.ArrivalTime(),
			Kind:    EventArrived,
			Subject: p.Name(),
		})
		ready.Push(p)
		admitted++
	}

	return admitted
}
