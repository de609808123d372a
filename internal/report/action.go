// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package report is the dual-mode query execution and reporting engine.
// Each run carries exactly one Action; the engine either executes the
// action's SQL against a live session and renders the result, or emits
// the same SQL as script text for later execution.
package report

// Action is the single operation mode selected for a run.
type Action int

const (
	// ActionNone means no action flag was supplied.
	ActionNone Action = iota
	// ActionAppend inserts a time entry.
	ActionAppend
	// ActionDaily reports totals per day.
	ActionDaily
	// ActionMonthly reports totals per month.
	ActionMonthly
	// ActionWeekly reports totals per week.
	ActionWeekly
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionAppend:
		return "append"
	case ActionDaily:
		return "daily"
	case ActionMonthly:
		return "monthly"
	case ActionWeekly:
		return "weekly"
	}
	return "unknown"
}

// ReportSpec is the fixed label/query pair backing a reporting action.
// Query text is defined here and never depends on user input.
type ReportSpec struct {
	Label string
	Query string
}

var reportSpecs = map[Action]ReportSpec{
	ActionDaily:   {Label: "Jours", Query: "SELECT * FROM public.jours_v"},
	ActionMonthly: {Label: "Mois", Query: "SELECT * FROM public.mois"},
	ActionWeekly:  {Label: "Semaines", Query: "SELECT * FROM public.semaines"},
}

// SpecFor returns the fixed report spec for a reporting action.
// ok is false for non-reporting actions.
func SpecFor(a Action) (ReportSpec, bool) {
	spec, ok := reportSpecs[a]
	return spec, ok
}
