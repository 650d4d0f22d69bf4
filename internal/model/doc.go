// Package model defines the data structures shared by the ketchup pipeline
// and report writers.
//
// The two main types mirror the two halves of a run:
//   - Record: one normalized Slack search match before filtering
//   - Row: one surviving result, tagged with its search definition name
//
// Models live in their own package so that slack, pipeline, and report can
// all use them without import cycles.
package model
