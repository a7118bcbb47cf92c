package core

import (
	"log"
)

// EventLogger is a hook that prints every appended event.
type EventLogger struct {
	Logger *log.Logger
}

// NewEventLogger returns an EventLogger that writes into the logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{Logger: logger}
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosEventAppended {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	switch evt.Kind {
	case EventSelected:
		h.Logger.Printf("%5d, %s -> %s (burst %d)",
			evt.Time, evt.Kind, evt.Subject, evt.Detail)
	case EventIdle, EventRunEnded:
		h.Logger.Printf("%5d, %s", evt.Time, evt.Kind)
	default:
		h.Logger.Printf("%5d, %s -> %s", evt.Time, evt.Kind, evt.Subject)
	}
}
