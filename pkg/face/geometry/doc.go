// Package geometry maps angular positions on a clock dial to Cartesian
// coordinates.
//
// All coordinates are percentages of a square viewBox whose centre is
// (50, 50). Index 0 of n divisions sits at 12 o'clock and indices advance
// clockwise, so for n = 12 index 3 is at 3 o'clock:
//
//	p := geometry.OnCircle(3, 12, 40) // p.X == 90, p.Y == 50
//
// The functions are pure and have no error paths; callers pass n as one of
// the fixed dial divisions (60, 24 or 12).
package geometry
