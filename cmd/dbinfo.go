// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"comptage/cli/internal/config"
	"comptage/cli/internal/dsn"
	"comptage/cli/internal/keychain"
)

// dbinfoCmd shows which database the tool would connect to, with the
// password masked. Useful for checking the env/keychain/defaults
// resolution order without exposing credentials.
var dbinfoCmd = &cobra.Command{
	Use:   "dbinfo",
	Short: "Show the resolved database connection string",
	Long: `The dbinfo command displays the connection string (DSN) the next run
would use, with the password replaced by *** for security. The DSN is
resolved from COMPTAGE_DSN, then DATABASE_URL, then the OS keychain,
then the configured connection defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			pterm.Warning.Printfln("config: %v (using defaults)", err)
			cfg = config.Default()
		}

		var store dsn.Store
		if km, err := keychain.GetManager(); err == nil {
			store = km
		}
		connString, source, err := dsn.Resolve(cfg.DB, store)
		if err != nil {
			return err
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Database Connection")).
			WithTopPadding(1).
			WithBottomPadding(1).
			WithLeftPadding(1).
			WithRightPadding(1).
			Println(maskPassword(connString))
		pterm.Println()
		pterm.Printfln("Resolved from: %s", source)
		pterm.Println("To store a different connection, run: comptage connect")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbinfoCmd)
}

// maskPassword replaces the password in a PostgreSQL DSN with asterisks.
// The mask is spliced into the raw string by hand: round-tripping through
// url.URL.String() would percent-encode the asterisks. Userinfo runs to
// the last @ and the password starts at the first colon, the same split
// the URL parser performs.
func maskPassword(raw string) string {
	prefix := ""
	rest := raw
	if i := strings.Index(raw, "://"); i != -1 {
		prefix = raw[:i+3]
		rest = raw[i+3:]
	}

	atIndex := strings.LastIndex(rest, "@")
	if atIndex == -1 {
		return raw
	}
	auth := rest[:atIndex]

	colonIndex := strings.Index(auth, ":")
	if colonIndex == -1 {
		return raw
	}

	return prefix + auth[:colonIndex] + ":***" + rest[atIndex:]
}
