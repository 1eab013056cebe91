package metrics

import "github.com/san-kum/ballsim/internal/sim"

// Defaults returns a fresh set of the standard run metrics.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewKineticEnergy(),
		NewEnergyDrift(),
		NewMomentum(),
		NewCollisionRate(),
		NewMaxOverlap(),
		NewSpeedStats(),
	}
}
