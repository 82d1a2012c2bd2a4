package desim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cortado-sim/desim/desim"
)

var _ = Describe("AnyOf", func() {
	var sched *desim.Scheduler

	BeforeEach(func() {
		sched = desim.NewScheduler()
	})

	It("triggers immediately given no inputs", func() {
		out := desim.AnyOf(sched)
		Expect(out.Triggered()).To(BeTrue())
	})

	It("triggers immediately if any input is already Processed", func() {
		done := sched.Event()
		done.Trigger()
		Expect(sched.Run()).To(Succeed())

		pending := sched.Event()

		out := desim.AnyOf(sched, pending, done)
		Expect(out.Triggered()).To(BeTrue())
	})

	It("triggers when the first of several pending inputs processes", func() {
		a := sched.Event()
		b := sched.Event()

		out := desim.AnyOf(sched, a, b)
		Expect(out.Pending()).To(BeTrue())

		a.Trigger()
		Expect(sched.Run()).To(Succeed())

		Expect(out.Processed()).To(BeTrue())
	})

	It("never fires if every input is aborted", func() {
		a := sched.Event()
		b := sched.Event()

		out := desim.AnyOf(sched, a, b)

		a.Abort()
		b.Abort()

		Expect(out.Pending()).To(BeTrue())
	})

	It("is idempotent when more than one input eventually fires", func() {
		a := sched.Event()
		b := sched.Event()

		out := desim.AnyOf(sched, a, b)

		a.Trigger()
		b.Trigger()
		Expect(sched.Run()).To(Succeed())

		Expect(out.Processed()).To(BeTrue())
	})
})

var _ = Describe("AllOf", func() {
	var sched *desim.Scheduler

	BeforeEach(func() {
		sched = desim.NewScheduler()
	})

	It("triggers immediately given no inputs", func() {
		out := desim.AllOf(sched)
		Expect(out.Triggered()).To(BeTrue())
	})

	It("triggers immediately if every input is already Processed", func() {
		a := sched.Event()
		a.Trigger()
		Expect(sched.Run()).To(Succeed())

		out := desim.AllOf(sched, a)
		Expect(out.Triggered()).To(BeTrue())
	})

	It("waits for every pending input before triggering", func() {
		a := sched.Event()
		b := sched.Event()

		out := desim.AllOf(sched, a, b)

		a.Trigger()
		Expect(sched.Run()).To(Succeed())
		Expect(out.Pending()).To(BeTrue())

		b.Trigger()
		Expect(sched.Run()).To(Succeed())
		Expect(out.Processed()).To(BeTrue())
	})

	It("never fires if one input is aborted before processing", func() {
		a := sched.Event()
		b := sched.Event()

		out := desim.AllOf(sched, a, b)

		a.Trigger()
		Expect(sched.Run()).To(Succeed())

		b.Abort()

		Expect(out.Pending()).To(BeTrue())
	})
})

var _ = Describe("AnyOfValue", func() {
	var sched *desim.Scheduler

	BeforeEach(func() {
		sched = desim.NewScheduler()
	})

	It("carries the payload of whichever input fires first", func() {
		a := desim.EventValue[int](sched)
		b := desim.EventValue[int](sched)

		out := desim.AnyOfValue(sched, a, b)

		b.Trigger(9)
		Expect(sched.Run()).To(Succeed())

		v, err := out.Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(9))
	})

	It("triggers immediately if an input is already Processed", func() {
		a := desim.EventValue[string](sched)
		a.Trigger("now")
		Expect(sched.Run()).To(Succeed())

		pending := desim.EventValue[string](sched)

		out := desim.AnyOfValue(sched, pending, a)
		v, err := out.Value()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("now"))
	})
})
