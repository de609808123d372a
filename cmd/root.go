// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for comptage.
// The root command carries the action flags (exactly one action per run)
// and the connect/dbinfo subcommands manage the stored connection string.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"comptage/cli/internal/config"
	"comptage/cli/internal/dsn"
	apperrors "comptage/cli/internal/errors"
	"comptage/cli/internal/keychain"
	"comptage/cli/internal/report"
	"comptage/cli/internal/session"
)

var (
	ajoutValue   string
	joursFlag    bool
	moisFlag     bool
	semainesFlag bool
	scriptFlag   bool
	verboseFlag  bool
	showVersion  bool
)

// rootCmd performs the run's single action. With --script the SQL is
// emitted to stdout and no connection is opened; otherwise the statement
// or query runs against the live session and reports render as tables.
var rootCmd = &cobra.Command{
	Use:   "comptage",
	Short: "Reporting tool for a personal time-tracking database",
	Long: `comptage appends a time entry or prints aggregated totals (per day,
month or week) from a time-tracking PostgreSQL database.

Exactly one action flag is accepted per run. With --script the
corresponding SQL is written to stdout as a batch script instead of
being executed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("comptage %s\n", Version)
			return nil
		}

		action, payload, err := selectedAction()
		if err != nil {
			return err
		}
		return run(cmd.Context(), action, payload)
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&ajoutValue, "ajout", "a", "", "append a time entry: raw (deb,fin) value list, passed through verbatim")
	rootCmd.Flags().BoolVarP(&joursFlag, "jours", "j", false, "totals per day")
	rootCmd.Flags().BoolVarP(&moisFlag, "mois", "m", false, "totals per month")
	rootCmd.Flags().BoolVarP(&semainesFlag, "semaines", "s", false, "totals per week")
	rootCmd.Flags().BoolVar(&scriptFlag, "script", false, "emit SQL to stdout instead of executing it")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose connection reporting")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "output version information, then exit")
}

// selectedAction maps the action flags to the single action for this run.
// More than one action flag is a usage error.
func selectedAction() (report.Action, string, error) {
	action := report.ActionNone
	payload := ""
	count := 0

	if ajoutValue != "" {
		action, payload = report.ActionAppend, ajoutValue
		count++
	}
	if joursFlag {
		action = report.ActionDaily
		count++
	}
	if moisFlag {
		action = report.ActionMonthly
		count++
	}
	if semainesFlag {
		action = report.ActionWeekly
		count++
	}

	if count > 1 {
		return report.ActionNone, "", apperrors.New(apperrors.UsageError,
			"only one of -a, -j, -m, -s may be given")
	}
	return action, payload, nil
}

// run executes the selected action. Script mode never opens a session:
// the emitted SQL does not depend on the connected server.
func run(ctx context.Context, action report.Action, payload string) error {
	if scriptFlag {
		exec := report.NewExecutor(report.ModeScript, nil, os.Stdout)
		return dispatch(ctx, exec, action, payload)
	}

	cfg, err := config.Load()
	if err != nil && verboseFlag {
		pterm.Warning.Printfln("config: %v (using defaults)", err)
	}

	var store dsn.Store
	if km, err := keychain.GetManager(); err == nil {
		store = km
	}
	connString, source, err := dsn.Resolve(cfg.DB, store)
	if err != nil {
		return err
	}
	if verboseFlag {
		pterm.Info.Printfln("connection string resolved from %s", source)
	}

	sess, err := session.Open(ctx, connString)
	if err != nil {
		return err
	}
	defer sess.Close()
	sess.HandleInterrupts()

	if verboseFlag {
		v := sess.Version()
		pterm.Info.Printfln("connected to server %s", v)
		if !v.IsAtLeast(9, 2) {
			pterm.Warning.Printfln("server %s predates 9.2; the reporting views may not exist", v)
		}
	}

	exec := report.NewExecutor(report.ModeDirect, sess, os.Stdout)
	return dispatch(ctx, exec, action, payload)
}

// dispatch runs the action and downgrades the no-action case to a
// warning: a run that selects nothing exits 0.
func dispatch(ctx context.Context, exec *report.Executor, action report.Action, payload string) error {
	err := report.Dispatch(ctx, exec, action, payload)
	if apperrors.HasKind(err, apperrors.NoAction) {
		pterm.Warning.Println("no action defined")
		return nil
	}
	return err
}
