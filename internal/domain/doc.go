// Package domain contains the core entities of the study tracker:
// vocabulary cards under spaced repetition, the append-only study log,
// and the value types (calendar Day, Activity, Quality) shared by the
// scheduler and the analytics engine.
//
// Domain objects validate themselves on construction; invalid values are
// rejected at the boundary rather than tolerated downstream.
package domain
