// Package viz renders chain diagnostics for the terminal.
//
// Output is plain strings so commands can print them or tests can inspect
// them:
//
//   - [RenderSummary]: styled table of one chain's statistics
//   - [RenderComparison]: one row per step size
//   - [PlotEnergySweep]: asciigraph plot of leapfrog energy error
//
// Set NO_COLOR or pipe the output to drop the ANSI styling.
package viz
