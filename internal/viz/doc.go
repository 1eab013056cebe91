// Package viz draws a ball simulation into text.
//
// [Canvas] is a Braille dot grid: each terminal cell carries 2x4 dots, so a
// W x H character canvas has (2W) x (4H) addressable sub-pixels. [Painter]
// maps field coordinates onto that grid and is meant to be passed to
// balls.Simulation.ForEachBall.
//
// Styles and themes used by the terminal host live here as well.
package viz
