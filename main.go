// Package main is the entry point for the comptage CLI, a single-shot
// reporting tool for a personal time-tracking PostgreSQL database.
package main

import (
	"comptage/cli/cmd"
)

func main() {
	cmd.Execute()
}
