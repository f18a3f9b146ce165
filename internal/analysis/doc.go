// Package analysis characterizes a recorded beam trace after the fact.
//
//   - [PowerSpectrum]: magnitude spectrum of the angle trace
//   - [DominantFrequency]: the frequency the beam rocks at
//   - [Summarize]: peak, overshoot, settling and final tilt of a run
//   - [PhasePortrait]: the (angle, angular velocity) trajectory as ASCII
package analysis
