package desim_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cortado-sim/desim/desim"
)

var _ = Describe("Spawn and Task", func() {
	var sched *desim.Scheduler

	BeforeEach(func() {
		sched = desim.NewScheduler()
	})

	It("does not run the actor body synchronously", func() {
		started := false

		desim.Spawn(sched, func(sched *desim.Scheduler, t *desim.Task) error {
			started = true
			return nil
		})

		Expect(started).To(BeFalse())
	})

	It("triggers its completion event when the body returns nil", func() {
		completion := desim.Spawn(sched, func(sched *desim.Scheduler, t *desim.Task) error {
			return nil
		})

		Expect(sched.Run()).To(Succeed())
		Expect(completion.Processed()).To(BeTrue())
	})

	It("suspends on Await and resumes when the awaited event processes", func() {
		gate := sched.Event()
		var resumedAt desim.VTime

		completion := desim.Spawn(sched, func(sched *desim.Scheduler, t *desim.Task) error {
			t.Await(gate)
			resumedAt = sched.Now()
			return nil
		})

		Expect(sched.Step()).To(Succeed())
		Expect(completion.Pending()).To(BeTrue())

		Expect(sched.Schedule(gate, 7)).To(Succeed())
		Expect(sched.Run()).To(Succeed())

		Expect(completion.Processed()).To(BeTrue())
		Expect(resumedAt).To(Equal(desim.VTime(7)))
	})

	It("passes a payload through SpawnValue and AwaitValue", func() {
		producer := desim.SpawnValue(sched, func(sched *desim.Scheduler, t *desim.Task) (int, error) {
			return 21, nil
		})

		consumed := -1
		desim.Spawn(sched, func(sched *desim.Scheduler, t *desim.Task) error {
			v, err := desim.AwaitValue(t, producer)
			if err != nil {
				return err
			}
			consumed = v * 2
			return nil
		})

		Expect(sched.Run()).To(Succeed())
		Expect(consumed).To(Equal(42))
	})

	It("leaves its completion event Pending on a returned error by default", func() {
		boom := errors.New("boom")

		completion := desim.Spawn(sched, func(sched *desim.Scheduler, t *desim.Task) error {
			return boom
		})

		Expect(sched.Run()).To(Succeed())
		Expect(completion.Pending()).To(BeTrue())
	})

	It("aborts its completion event on a returned error when AbortOnError is set", func() {
		sched.AbortOnError = true
		boom := errors.New("boom")

		completion := desim.Spawn(sched, func(sched *desim.Scheduler, t *desim.Task) error {
			return boom
		})

		Expect(sched.Run()).To(Succeed())
		Expect(completion.Aborted()).To(BeTrue())
	})

	It("lazily unwinds an actor body whose completion event was aborted while suspended", func() {
		gate := sched.Event()
		ranAfterAwait := false

		completion := desim.Spawn(sched, func(sched *desim.Scheduler, t *desim.Task) error {
			t.Await(gate)
			ranAfterAwait = true
			return nil
		})

		Expect(sched.Step()).To(Succeed())
		Expect(completion.Pending()).To(BeTrue())

		completion.Abort()
		gate.Trigger()

		Expect(sched.Run()).To(Succeed())
		Expect(ranAfterAwait).To(BeFalse())
		Expect(completion.Aborted()).To(BeTrue())
	})

	It("propagates a panic raised inside an actor body out of Step", func() {
		desim.Spawn(sched, func(sched *desim.Scheduler, t *desim.Task) error {
			panic("actor bug")
		})

		Expect(func() { _ = sched.Run() }).To(PanicWith("actor bug"))
	})
})
