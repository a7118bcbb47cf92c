package core

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("EventLog", func() {
	var (
		mockCtrl *gomock.Controller
		events   *EventLog
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		events = NewEventLog()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should keep events in append order", func() {
		events.Append(Event{Time: 0, Kind: EventArrived, Subject: "A"})
		events.Append(Event{Time: 0, Kind: EventSelected, Subject: "A", Detail: 3})
		events.Append(Event{Time: 3, Kind: EventFinished, Subject: "A"})

		Expect(events.Len()).To(Equal(3))
		Expect(events.Events()).To(Equal([]Event{
			{Time: 0, Kind: EventArrived, Subject: "A"},
			{Time: 0, Kind: EventSelected, Subject: "A", Detail: 3},
			{Time: 3, Kind: EventFinished, Subject: "A"},
		}))
	})

	It("should hand out a copy", func() {
		events.Append(Event{Time: 0, Kind: EventIdle})

		copied := events.Events()
		copied[0].Time = 42

		Expect(events.Events()[0].Time).To(Equal(0))
	})

	It("should panic if time goes backwards", func() {
		events.Append(Event{Time: 5, Kind: EventIdle})

		Expect(func() {
			events.Append(Event{Time: 4, Kind: EventIdle})
		}).To(Panic())
	})

	It("should close after the run ended", func() {
		events.Append(Event{Time: 2, Kind: EventRunEnded})

		Expect(events.Closed()).To(BeTrue())
		Expect(func() {
			events.Append(Event{Time: 2, Kind: EventIdle})
		}).To(Panic())
	})

	It("should invoke hooks for every event", func() {
		hook := NewMockHook(mockCtrl)
		events.AcceptHook(hook)

		evt := Event{Time: 1, Kind: EventArrived, Subject: "B"}
		hook.EXPECT().Func(HookCtx{
			Domain: events,
			Pos:    HookPosEventAppended,
			Item:   evt,
		})

		events.Append(evt)
	})
})

var _ = Describe("EventLogger", func() {
	It("should print events", func() {
		buf := new(bytes.Buffer)
		logger := NewEventLogger(log.New(buf, "", 0))
		events := NewEventLog()
		events.AcceptHook(logger)

		events.Append(Event{Time: 0, Kind: EventSelected, Subject: "A", Detail: 4})
		events.Append(Event{Time: 4, Kind: EventFinished, Subject: "A"})
		events.Append(Event{Time: 4, Kind: EventRunEnded})

		Expect(buf.String()).To(Equal(
			"    0, selected -> A (burst 4)\n" +
				"    4, finished -> A\n" +
				"    4, run_ended\n"))
	})

	It("should ignore other hook positions", func() {
		buf := new(bytes.Buffer)
		logger := NewEventLogger(log.New(buf, "", 0))

		logger.Func(HookCtx{Pos: &HookPos{Name: "Other"}, Item: Event{}})

		Expect(buf.Len()).To(BeZero())
	})
})
