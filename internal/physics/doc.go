// Package physics holds the balance beam: its state, the torque models
// that turn placed weights into a driving torque, and the integrator that
// advances the beam one tick at a time.
//
// Angles are degrees throughout. A positive angle lowers the right arm.
// Every tick ends with the beam inside ±MaxAngle regardless of step size.
package physics
