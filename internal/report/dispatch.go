// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

package report

import (
	"context"
	"fmt"

	apperrors "comptage/cli/internal/errors"
)

// insertTemplate is the fixed statement the append action fills in.
// The value list is substituted verbatim: the payload is trusted input
// from the operator's own command line, and no escaping is applied so
// the emitted statement matches what the user typed. This is a trust
// boundary, not sanitized.
const insertTemplate = "INSERT INTO public.comptage (deb,fin) VALUES (%s)"

// AppendStatement builds the insert statement for a raw value-list payload.
func AppendStatement(payload string) string {
	return fmt.Sprintf(insertTemplate, payload)
}

// ErrNoAction is returned when a run selects no action. Callers report
// it as a warning; it does not force a non-zero exit by itself.
var ErrNoAction = apperrors.New(apperrors.NoAction, "no action defined")

// Dispatch maps the selected action to exactly one executor call.
// It is total over the Action set.
func Dispatch(ctx context.Context, exec *Executor, action Action, payload string) error {
	switch action {
	case ActionAppend:
		return exec.Execute(ctx, AppendStatement(payload))
	case ActionDaily, ActionMonthly, ActionWeekly:
		spec, _ := SpecFor(action)
		return exec.Render(ctx, spec)
	case ActionNone:
		return ErrNoAction
	}
	return apperrors.New(apperrors.UsageError, fmt.Sprintf("unknown action %v", action))
}
