// Package wageengine computes monthly wage totals for shift-working guides
// from a pre-resolved snapshot of reports and reference data. It has no
// database or HTTP dependencies: it operates purely on the ReferenceSnapshot
// input struct and produces MonthlyTotals / DayView output structs. All
// history resolution, shift-template lookup, and rate lookup happen before
// this package is invoked — see internal/wageservice for the orchestration
// that builds a ReferenceSnapshot from the relational store.
package wageengine
