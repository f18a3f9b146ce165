// Package viz is the interactive terminal shell of the balance scale.
//
// The shell is a Bubble Tea program ticking at 60 Hz. Each frame drains
// the queued key presses into the simulation, advances it by the measured
// frame time and redraws:
//
//   - [Model]: the program, wrapping a [sim.Simulation]
//   - [Scene]: the beam, stand and weights on a braille [Canvas]
//   - five color themes, cycled with T
//
// # Key Bindings
//
//	, or h    - Drop the selected weight on the left
//	. or l    - Drop the selected weight on the right
//	U         - Undo the last drop
//	R         - Reset the scale
//	Space     - Pause/Resume
//	Up/Down   - Small or big weights
//	Left/Right - Cycle the weight size
//	1-5       - Pick a weight size
//	T         - Cycle color themes
//	?         - Show help overlay
//	Q         - Quit
package viz
