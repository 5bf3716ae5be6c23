// Package viz renders the simulations in the terminal.
//
// Drawing happens on a braille [Canvas] (2x4 sub-pixels per cell). 3-D
// geometry goes through a [Wireframe] projected by a [Camera] with a
// painter's algorithm. The interactive views are bubbletea programs:
// [Model] for the orbit simulation and [SolenoidModel] for the field-line
// display.
package viz
