// Package balls simulates identical circular balls bouncing inside a
// rectangular field.
//
// A [Simulation] owns a fixed number of [Ball] values and advances them one
// unit time step per [Simulation.Update] call:
//
//   - Move: explicit Euler, position += velocity
//   - Boundary resolution: reflect and push back against the [Field] walls
//   - Collision resolution: equal-mass elastic exchange along the contact normal
//
// Balls are placed on a regular grid of cells one diameter apart, so the
// initial state never overlaps. Placement and velocity seeding draw from an
// injected [Rand], which makes construction reproducible under a fixed seed.
// Update itself uses no randomness.
//
// # Example
//
//	s, err := balls.New(50, 10, balls.Rect{Right: 640, Bottom: 480},
//	    balls.WithRand(balls.NewRand(42)))
//	if err != nil {
//	    return err
//	}
//	for range 100 {
//	    s.Update()
//	}
//	s.ForEachBall(func(x, y, r float64) { draw(x-r, y-r) })
//
// # Thread Safety
//
// A Simulation is NOT thread-safe. Hosts must not read or mutate balls while
// Update runs.
//
// # Scaling
//
// Collision detection scans all pairs, O(N²) per step. This is fine for tens
// to a few hundred balls.
package balls
