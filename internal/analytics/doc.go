// Package analytics derives read-only views from the append-only study
// log: daily totals, rolling windows, activity breakdowns, streaks,
// weekly-goal completion, and calendar heatmaps.
//
// Every derivation takes the log and a reference day as explicit inputs.
// Injecting "today" once per pass keeps all derived numbers mutually
// consistent and makes the engine fully deterministic under test.
package analytics
