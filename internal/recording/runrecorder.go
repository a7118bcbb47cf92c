package recording

import (
	"log"

	"github.com/rs/xid"

	"cpusched/internal/core"
	"cpusched/internal/schedulers"
)

const (
	runTable     = "runs"
	eventTable   = "events"
	processTable = "process_metrics"
)

type runEntry struct {
	RunID     string
	Policy    string
	Quantum   int
	RunFor    int
	FinalTime int
	IdleTime  int
}

type eventEntry struct {
	RunID   string
	Seq     int
	Time    int
	Kind    string
	Subject string
	Detail  int
}

type processEntry struct {
	RunID          string
	Name           string
	ArrivalTime    int
	BurstTime      int
	Finished       bool
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// RunRecorder stores the events and metrics of runs. It is attached to a
// simulator as a hook so that events are captured as they are appended.
type RunRecorder struct {
	recorder DataRecorder
	runID    string
	seq      int
}

// NewRunRecorder creates the tables of a run export and assigns a run ID.
func NewRunRecorder(recorder DataRecorder) (*RunRecorder, error) {
	for name, sample := range map[string]any{
		runTable:     runEntry{},
		eventTable:   eventEntry{},
		processTable: processEntry{},
	} {
		if err := recorder.CreateTable(name, sample); err != nil {
			return nil, err
		}
	}

	return &RunRecorder{
		recorder: recorder,
		runID:    xid.New().String(),
	}, nil
}

// RunID returns the identifier tagging every row of the current run.
func (r *RunRecorder) RunID() string {
	return r.runID
}

// Func records appended events.
func (r *RunRecorder) Func(ctx core.HookCtx) {
	if ctx.Pos != core.HookPosEventAppended {
		return
	}

	evt, ok := ctx.Item.(core.Event)
	if !ok {
		return
	}

	err := r.recorder.InsertData(eventTable, eventEntry{
		RunID:   r.runID,
		Seq:     r.seq,
		Time:    evt.Time,
		Kind:    evt.Kind.String(),
		Subject: evt.Subject,
		Detail:  evt.Detail,
	})
	if err != nil {
		log.Printf("recording event %+v: %v", evt, err)
		return
	}

	r.seq++
}

// RecordResult stores the run summary and the process metrics, flushes, and
// prepares the recorder for the next run.
func (r *RunRecorder) RecordResult(result *schedulers.Result) error {
	run := runEntry{
		RunID:     r.runID,
		Policy:    result.Config.Policy.String(),
		RunFor:    result.Config.RunFor,
		FinalTime: result.FinalTime,
		IdleTime:  result.Cpu.IdleTime,
	}
	if result.Config.Policy == core.PolicyRoundRobin {
		run.Quantum = result.Config.Quantum
	}

	if err := r.recorder.InsertData(runTable, run); err != nil {
		return err
	}

	for _, m := range result.Metrics {
		err := r.recorder.InsertData(processTable, processEntry{
			RunID:          r.runID,
			Name:           m.Name,
			ArrivalTime:    m.ArrivalTime,
			BurstTime:      m.BurstTime,
			Finished:       m.Finished,
			WaitingTime:    m.WaitingTime,
			TurnaroundTime: m.TurnaroundTime,
			ResponseTime:   m.ResponseTime,
		})
		if err != nil {
			return err
		}
	}

	if err := r.recorder.Flush(); err != nil {
		return err
	}

	log.Printf("run %s recorded", r.runID)

	r.runID = xid.New().String()
	r.seq = 0

	return nil
}
