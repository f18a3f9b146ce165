// Package dynamo provides the shared primitives of the balance simulation.
//
// The package defines the small vocabulary every other package speaks:
//
//   - [State]: integrated vector, {angle, angular velocity} for a beam
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical stepping backend
//   - [Sample]: one per-tick observation of a running simulation
//   - [Metric]: aggregates samples into a single figure
//
// Errors are sentinel values wrapped with context; use [errors.Is] to
// classify them. [ConfigError] unwraps to [ErrConfiguration].
//
// # Thread Safety
//
// Nothing in the balance core is safe for concurrent use. A simulation is
// driven by a single frame loop; independent simulations may run in
// parallel as long as they share no values.
package dynamo
