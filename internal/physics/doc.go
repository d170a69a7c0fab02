// Package physics advances the particle store.
//
//   - [Stepper]: one fixed time step of the kinematic random walk, with
//     optional linear or quadratic friction and trail sampling
//   - [Reflect]: the boundary pass that bounces particles off the padded
//     viewport
//
// The frame loop calls Advance and then Reflect:
//
//	st := physics.NewStepper(cfg.Engine, cfg.Trail.UpdateEvery, rng)
//	st.Advance(store)
//	bounces := physics.Reflect(store, physics.NewBounds(w, h, cfg.Boundary.Overflow))
package physics
