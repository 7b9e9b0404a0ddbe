package kinematics_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/phystutor/internal/kinematics"
	"github.com/san-kum/phystutor/internal/phys"
	"github.com/san-kum/phystutor/internal/units"
)

const tol = 1e-9

func q(v float64, unit string) phys.Quantity {
	return phys.Quantity{Value: v, Unit: unit}
}

var _ = Describe("Solver", func() {
	var solver *kinematics.Solver

	BeforeEach(func() {
		solver = kinematics.NewSolver(units.NewRegistry())
	})

	It("reproduces ground truth from v0, a, t", func() {
		// v0=2, a=3, t=4 -> v=14, dx=32
		res, err := solver.Solve(phys.QuantitySet{
			"v0": q(2, "m/s"),
			"a":  q(3, "m/s^2"),
			"t":  q(4, "s"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Solved["v"]).To(BeNumerically("~", 14.0, tol))
		Expect(res.Solved["dx"]).To(BeNumerically("~", 32.0, tol))
		Expect(res.Known).To(HaveLen(3))
		Expect(res.Solved).To(HaveLen(2))
	})

	It("converts knowns to SI before solving", func() {
		// 72 km/h = 20 m/s, constant velocity for one minute
		res, err := solver.Solve(phys.QuantitySet{
			"v0": q(72, "km/h"),
			"a":  q(0, "m/s^2"),
			"t":  q(1, "min"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Known["v0"]).To(BeNumerically("~", 20.0, tol))
		Expect(res.Known["t"]).To(BeNumerically("~", 60.0, tol))
		Expect(res.Solved["dx"]).To(BeNumerically("~", 1200.0, tol))
	})

	DescribeTable("resolves every 3-of-5 combination of a known motion",
		// Ground truth: v0=5, a=2, t=3 -> v=11, dx=24
		func(names ...string) {
			truth := map[string]float64{"v0": 5, "v": 11, "a": 2, "t": 3, "dx": 24}

			knowns := phys.QuantitySet{}
			for _, n := range names {
				knowns[n] = q(truth[n], kinematics.Canonical[n])
			}

			res, err := solver.Solve(knowns)
			Expect(err).NotTo(HaveOccurred())
			for sym, want := range truth {
				got, ok := res.Known[sym]
				if !ok {
					got, ok = res.Solved[sym]
				}
				Expect(ok).To(BeTrue(), "symbol %s missing", sym)
				Expect(got).To(BeNumerically("~", want, 1e-6), "symbol %s", sym)
			}
		},
		Entry("v0 v a", "v0", "v", "a"),
		Entry("v0 v t", "v0", "v", "t"),
		Entry("v0 v dx", "v0", "v", "dx"),
		Entry("v0 a t", "v0", "a", "t"),
		Entry("v0 a dx", "v0", "a", "dx"),
		Entry("v0 t dx", "v0", "t", "dx"),
		Entry("v a t", "v", "a", "t"),
		Entry("v a dx", "v", "a", "dx"),
		Entry("v t dx", "v", "t", "dx"),
		Entry("a t dx", "a", "t", "dx"),
	)

	It("rejects a single known as under-determined", func() {
		_, err := solver.Solve(phys.QuantitySet{"v0": q(5, "m/s")})
		Expect(errors.Is(err, phys.ErrInsufficientData)).To(BeTrue())

		var ide *phys.InsufficientDataError
		Expect(errors.As(err, &ide)).To(BeTrue())
		Expect(ide.Unresolved).To(ContainElements("a", "dx", "t", "v"))
	})

	It("rejects two knowns as under-determined", func() {
		_, err := solver.Solve(phys.QuantitySet{
			"v0": q(5, "m/s"),
			"t":  q(3, "s"),
		})
		Expect(errors.Is(err, phys.ErrInsufficientData)).To(BeTrue())
	})

	It("rejects contradictory knowns", func() {
		// v0=0, a=1, t=2 implies v=2, not 5
		_, err := solver.Solve(phys.QuantitySet{
			"v0": q(0, ""),
			"a":  q(1, ""),
			"t":  q(2, ""),
			"v":  q(5, ""),
		})
		Expect(errors.Is(err, phys.ErrInsufficientData)).To(BeTrue())
	})

	It("ignores symbols outside the fixed set", func() {
		res, err := solver.Solve(phys.QuantitySet{
			"v0":    q(0, "m/s"),
			"a":     q(2, "m/s^2"),
			"t":     q(5, "s"),
			"theta": q(30, "deg"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Known).NotTo(HaveKey("theta"))
		Expect(res.Solved).NotTo(HaveKey("theta"))
	})

	Describe("unit fallback policy", func() {
		It("falls back to the raw value by default", func() {
			res, err := solver.Solve(phys.QuantitySet{
				"v0": q(3, "furlong/fortnight"),
				"a":  q(0, "m/s^2"),
				"t":  q(2, "s"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Known["v0"]).To(BeNumerically("~", 3.0, tol))
			Expect(res.Solved["dx"]).To(BeNumerically("~", 6.0, tol))
		})

		It("surfaces conversion errors when fallback is disabled", func() {
			solver.FallbackRaw = false
			_, err := solver.Solve(phys.QuantitySet{
				"v0": q(3, "furlong/fortnight"),
				"a":  q(0, "m/s^2"),
				"t":  q(2, "s"),
			})
			Expect(errors.Is(err, phys.ErrUnknownUnit)).To(BeTrue())
		})
	})

	It("handles deceleration to rest", func() {
		// v0=10, a=-2, v=0 -> t=5, dx=25
		res, err := solver.Solve(phys.QuantitySet{
			"v0": q(10, "m/s"),
			"a":  q(-2, "m/s^2"),
			"v":  q(0, "m/s"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Solved["t"]).To(BeNumerically("~", 5.0, tol))
		Expect(res.Solved["dx"]).To(BeNumerically("~", 25.0, tol))
	})
})
