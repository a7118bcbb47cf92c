package core

import (
	"fmt"
	"log"
)

// EventKind enumerates what happened at a point of the simulation.
type EventKind int

const (
	EventArrived EventKind = iota
	EventSelected
	EventFinished
	EventIdle
	EventRunEnded
)

func (k EventKind) String() string {
	switch k {
	case EventArrived:
		return "arrived"
	case EventSelected:
		return "selected"
	case EventFinished:
		return "finished"
	case EventIdle:
		return "idle"
	case EventRunEnded:
		return "run_ended"
	}

	return fmt.Sprintf("event(%d)", int(k))
}

// Event is one entry of the event log. Subject is empty for idle and
// run-ended events. Detail is the burst shown when a process is selected.
type Event struct {
	Time    int
	Kind    EventKind
	Subject string
	Detail  int
}

// HookPosEventAppended triggers after an event is appended to the log.
var HookPosEventAppended = &HookPos{Name: "EventAppended"}

// EventLog is the append-only, time-ordered event sequence of a run.
type EventLog struct {
	*HookableBase

	events []Event
	closed bool
}

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{
		HookableBase: NewHookableBase(),
		events:       make([]Event, 0),
	}
}

// Append adds an event. Events must come in non-decreasing time order and
// nothing can be appended after the run-ended event.
func (l *EventLog) Append(evt Event) {
	if l.closed {
		log.Panicf("event %+v appended after the run ended", evt)
	}

	if n := len(l.events); n > 0 && evt.Time < l.events[n-1].Time {
		log.Panicf("event %+v is earlier than the last event at %d",
			evt, l.events[n-1].Time)
	}

	l.events = append(l.events, evt)

	if evt.Kind == EventRunEnded {
		l.closed = true
	}

	l.InvokeHook(HookCtx{
		Domain: l,
		Pos:    HookPosEventAppended,
		Item:   evt,
	})
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Closed reports whether the run-ended event has been appended.
func (l *EventLog) Closed() bool {
	return l.closed
}

// Events returns a copy of the recorded events.
func (l *EventLog) Events() []Event {
	events := make([]Event, len(l.events))
	copy(events, l.events)

	return events
}
