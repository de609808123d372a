// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"

	apperrors "comptage/cli/internal/errors"
	"comptage/cli/internal/report"
)

// resetFlags restores the action flag globals after a test case.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		ajoutValue = ""
		joursFlag = false
		moisFlag = false
		semainesFlag = false
	})
}

func TestSelectedAction(t *testing.T) {
	tests := []struct {
		name        string
		ajout       string
		jours       bool
		mois        bool
		semaines    bool
		wantAction  report.Action
		wantPayload string
		expectUsage bool
	}{
		{name: "none", wantAction: report.ActionNone},
		{
			name:        "append carries payload",
			ajout:       "'2024-01-01 08:00','2024-01-01 12:00'",
			wantAction:  report.ActionAppend,
			wantPayload: "'2024-01-01 08:00','2024-01-01 12:00'",
		},
		{name: "daily", jours: true, wantAction: report.ActionDaily},
		{name: "monthly", mois: true, wantAction: report.ActionMonthly},
		{name: "weekly", semaines: true, wantAction: report.ActionWeekly},
		{name: "two reports conflict", jours: true, mois: true, expectUsage: true},
		{name: "append and report conflict", ajout: "'a','b'", semaines: true, expectUsage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			ajoutValue = tt.ajout
			joursFlag = tt.jours
			moisFlag = tt.mois
			semainesFlag = tt.semaines

			action, payload, err := selectedAction()
			if tt.expectUsage {
				if !apperrors.HasKind(err, apperrors.UsageError) {
					t.Fatalf("selectedAction() error = %v, want usage_error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("selectedAction() unexpected error: %v", err)
			}
			if action != tt.wantAction {
				t.Errorf("action = %v, want %v", action, tt.wantAction)
			}
			if payload != tt.wantPayload {
				t.Errorf("payload = %q, want %q", payload, tt.wantPayload)
			}
		})
	}
}

func TestVersionFlagShorthand(t *testing.T) {
	f := rootCmd.Flags().ShorthandLookup("V")
	if f == nil || f.Name != "version" {
		t.Fatalf("-V is not shorthand for --version: %+v", f)
	}
}
