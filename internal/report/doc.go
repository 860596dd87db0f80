// Package report computes the derived views over the diary: the daily
// summary, the 30-day leak heatmap and the daily timeline.
//
// Every function here is a pure function of (event collection, date
// inputs): no store access, no wall clock, no mutation. The views are
// recomputed from a snapshot on every query, never incrementally
// maintained, so the same inputs always produce the same output.
package report
