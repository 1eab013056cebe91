package balls_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballsim/internal/balls"
)

func kineticEnergy(state []balls.Ball) float64 {
	e := 0.0
	for _, b := range state {
		e += 0.5 * (b.VX*b.VX + b.VY*b.VY)
	}
	return e
}

func momentum(state []balls.Ball) (px, py float64) {
	for _, b := range state {
		px += b.VX
		py += b.VY
	}
	return
}

var _ = Describe("Simulation", func() {
	bounds := balls.Rect{Right: 200, Bottom: 160}

	DescribeTable("places balls without overlap",
		func(count int, seed int64) {
			s, err := balls.New(count, 10, bounds, balls.WithRand(balls.NewRand(seed)))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Len()).To(Equal(count))

			state := s.Balls()
			for i := range state {
				for j := i + 1; j < len(state); j++ {
					d := math.Hypot(state[i].X-state[j].X, state[i].Y-state[j].Y)
					Expect(d).To(BeNumerically(">=", 10), "balls %d and %d", i, j)
				}
			}
		},
		Entry("sparse", 10, int64(1)),
		Entry("half full", 160, int64(2)),
		Entry("full", 320, int64(3)),
	)

	DescribeTable("keeps every center inside the field",
		func(policy balls.BoundaryPolicy, seed int64) {
			s, err := balls.New(40, 10, bounds,
				balls.WithRand(balls.NewRand(seed)),
				balls.WithBoundaryPolicy(policy))
			Expect(err).NotTo(HaveOccurred())

			for step := 0; step < 1000; step++ {
				s.Update()
				s.ForEachBall(func(x, y, _ float64) {
					Expect(x).To(BeNumerically(">=", bounds.Left))
					Expect(x).To(BeNumerically("<=", bounds.Right))
					Expect(y).To(BeNumerically(">=", bounds.Top))
					Expect(y).To(BeNumerically("<=", bounds.Bottom))
				})
			}
		},
		Entry("independent", balls.BoundaryIndependent, int64(10)),
		Entry("ordered", balls.BoundaryOrdered, int64(11)),
	)

	It("never produces non-finite state", func() {
		s, err := balls.New(120, 10, bounds, balls.WithRand(balls.NewRand(21)))
		Expect(err).NotTo(HaveOccurred())

		for step := 0; step < 500; step++ {
			s.Update()
		}
		for _, b := range s.Balls() {
			Expect(b.IsValid()).To(BeTrue())
		}
	})

	Context("with an isolated pair collision", func() {
		var before, after []balls.Ball

		BeforeEach(func() {
			s, err := balls.Restore(10, bounds, []balls.Ball{
				{X: 60, Y: 80, VX: 0.7, VY: 0.2},
				{X: 67, Y: 84, VX: -0.4, VY: -0.3},
			})
			Expect(err).NotTo(HaveOccurred())
			before = s.Balls()
			s.Update()
			after = s.Balls()
			Expect(s.Stats().Collisions).To(Equal(1))
		})

		It("conserves kinetic energy", func() {
			Expect(kineticEnergy(after)).To(BeNumerically("~", kineticEnergy(before), 1e-12))
		})

		It("conserves momentum", func() {
			px0, py0 := momentum(before)
			px1, py1 := momentum(after)
			Expect(px1).To(BeNumerically("~", px0, 1e-12))
			Expect(py1).To(BeNumerically("~", py0, 1e-12))
		})
	})

	It("does nothing with no balls", func() {
		s, err := balls.New(0, 10, balls.Rect{Right: 5, Bottom: 5})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Update).NotTo(Panic())
		Expect(s.Balls()).To(BeEmpty())
	})

	It("rejects a field that cannot hold the balls", func() {
		_, err := balls.New(5, 10, balls.Rect{Right: 20, Bottom: 20})
		Expect(err).To(MatchError(balls.ErrConfiguration))

		var cfgErr *balls.ConfigError
		Expect(err).To(BeAssignableToTypeOf(cfgErr))
	})
})
