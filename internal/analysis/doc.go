// Package analysis inspects recorded runs.
//
// Speed histograms show how the initial uniform speed distribution relaxes
// through collisions. Velocity portraits plot every ball in (vx, vy) space,
// where exchanges along contact normals spread points around the origin.
package analysis
