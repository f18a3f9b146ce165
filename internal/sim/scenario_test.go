package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/balancescale/internal/physics"
	"github.com/san-kum/balancescale/internal/sim"
	"github.com/san-kum/balancescale/internal/stability"
	"github.com/san-kum/balancescale/internal/weights"
)

const frame = 1.0 / 60

var _ = Describe("Simulation", func() {
	var s *sim.Simulation

	build := func(restoring float64) {
		settings := sim.DefaultSettings()
		settings.Params.Restoring = restoring
		var err error
		s, err = sim.New(settings)
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		build(physics.DefaultRestoring)
	})

	Context("with a single 5 kg weight on the right", func() {
		It("tilts monotonically toward positive angles without passing the limit", func() {
			_, err := s.Place(5, weights.Right)
			Expect(err).NotTo(HaveOccurred())

			prev := s.Angle()
			for i := 0; i < 60; i++ {
				s.Tick(frame)
				Expect(s.Angle()).To(BeNumerically(">=", prev))
				Expect(s.Angle()).To(BeNumerically("<=", 45))
				prev = s.Angle()
			}
			Expect(s.Angle()).To(BeNumerically(">", 0))
			Expect(s.Torque()).To(BeNumerically(">", 0))
		})

		It("does the same on the raw reference constants", func() {
			build(0)
			s.Place(5, weights.Right)
			for i := 0; i < 60; i++ {
				s.Tick(frame)
			}
			Expect(s.Angle()).To(BeNumerically(">", 0))
			Expect(s.Angle()).To(BeNumerically("<=", 45))
		})
	})

	Context("with equal weights on both sides", func() {
		It("keeps the beam level for any step size", func() {
			s.Place(3, weights.Left)
			s.Place(3, weights.Right)
			for _, dt := range []float64{frame, 0.25, 3, 0} {
				s.Tick(dt)
				Expect(s.Angle()).To(Equal(0.0))
				Expect(s.Torque()).To(Equal(0.0))
			}
			Expect(s.StabilizationState()).To(Equal(stability.Stabilized))
		})
	})

	Context("with nothing on the beam", func() {
		It("stays at rest", func() {
			for i := 0; i < 300; i++ {
				s.Tick(frame)
			}
			Expect(s.Angle()).To(Equal(0.0))
			Expect(s.AngularVelocity()).To(Equal(0.0))
		})
	})

	Context("when a heavy weight settles and is undone", func() {
		It("returns the left total to zero and swings back toward level", func() {
			s.Place(16, weights.Left)

			// a turning point also has ω near zero; settled means the angle
			// has stopped moving for half a second
			quiet, prev := 0, s.Angle()
			for i := 0; i < 60*60 && quiet < 30; i++ {
				s.Tick(frame)
				if math.Abs(s.Angle()-prev) < 1e-4 && math.Abs(s.AngularVelocity()) < 0.01 {
					quiet++
				} else {
					quiet = 0
				}
				prev = s.Angle()
			}
			Expect(quiet).To(Equal(30), "beam never came to rest")
			settled := s.Angle()
			Expect(settled).To(BeNumerically("<", 0))

			w, ok := s.Undo()
			Expect(ok).To(BeTrue())
			Expect(w.Mass).To(Equal(16.0))
			Expect(s.TotalWeight(weights.Left)).To(Equal(0.0))

			s.Tick(frame)
			s.Tick(frame)
			Expect(s.AngularVelocity()).To(BeNumerically(">", 0))
			Expect(math.Abs(s.Angle())).To(BeNumerically("<", math.Abs(settled)))
		})
	})

	Context("undo round trip", func() {
		It("restores totals and history length", func() {
			s.Place(2, weights.Left)
			before, history := s.TotalWeight(weights.Left), s.HistoryLen()

			s.Place(11, weights.Left)
			s.Undo()
			Expect(s.TotalWeight(weights.Left)).To(Equal(before))
			Expect(s.HistoryLen()).To(Equal(history))
		})

		It("is a no-op on an empty history", func() {
			w, ok := s.Undo()
			Expect(ok).To(BeFalse())
			Expect(w).To(BeNil())
		})
	})

	Context("stabilization indicator", func() {
		It("moves from stabilized to not close as an imbalance grows", func() {
			Expect(s.StabilizationState()).To(Equal(stability.Stabilized))

			s.Place(16, weights.Right)
			for i := 0; i < 10*60; i++ {
				s.Tick(frame)
			}
			Expect(s.StabilizationState()).To(Equal(stability.NotClose))
		})
	})
})
