// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

package report

import (
	"context"
	"fmt"
	"io"

	apperrors "comptage/cli/internal/errors"
	"comptage/cli/internal/render"
)

// Mode selects how an action's SQL is carried out. It is fixed at
// startup and governs both Execute and Render.
type Mode int

const (
	// ModeDirect runs statements against the live session and renders
	// results immediately.
	ModeDirect Mode = iota
	// ModeScript emits semicolon-terminated SQL text to the sink, valid
	// as input to a SQL batch tool. No live execution occurs.
	ModeScript
)

// Resultset is a fully materialized query result: column names, a
// per-column numeric flag driving table alignment, and rows already
// converted to display strings.
type Resultset struct {
	Columns []string
	Numeric []bool
	Rows    [][]string
}

// Conn is the slice of the database session the engine needs. The live
// implementation is internal/session; tests substitute a mock.
type Conn interface {
	// Exec runs a statement that returns no rows.
	Exec(ctx context.Context, sql string) error
	// Query runs a row-returning query and materializes the result.
	Query(ctx context.Context, sql string) (*Resultset, error)
}

// Executor runs statements and reporting queries in the selected mode.
// In script mode conn may be nil: script generation never touches a
// live session.
type Executor struct {
	mode Mode
	conn Conn
	out  io.Writer
}

// NewExecutor creates an executor writing tables or script text to out.
func NewExecutor(mode Mode, conn Conn, out io.Writer) *Executor {
	return &Executor{mode: mode, conn: conn, out: out}
}

// Execute runs a non-row-returning statement. In script mode the
// statement is written out unvalidated and the call always succeeds.
// Any direct-mode failure is terminal for the run: the returned error
// carries the server message and the offending statement text, and the
// caller is expected to close the session and exit non-zero.
func (e *Executor) Execute(ctx context.Context, statement string) error {
	if e.mode == ModeScript {
		fmt.Fprintf(e.out, "%s;\n", statement)
		return nil
	}

	if err := e.conn.Exec(ctx, statement); err != nil {
		return apperrors.Wrap(apperrors.QueryFailed,
			fmt.Sprintf("statement was: %s", statement), err)
	}
	return nil
}

// Render runs a reporting query. In script mode it writes an echoed
// label line followed by the query, with no row-set allocation. In
// direct mode the result is printed as an aligned, titled,
// Unicode-bordered table; a zero-row result still renders the title,
// headers and borders. Failure policy matches Execute.
func (e *Executor) Render(ctx context.Context, spec ReportSpec) error {
	if e.mode == ModeScript {
		fmt.Fprintf(e.out, "\\echo %s\n", spec.Label)
		fmt.Fprintf(e.out, "%s;\n", spec.Query)
		return nil
	}

	rs, err := e.conn.Query(ctx, spec.Query)
	if err != nil {
		return apperrors.Wrap(apperrors.QueryFailed,
			fmt.Sprintf("query was: %s", spec.Query), err)
	}

	render.Table(e.out, spec.Label, rs.Columns, rs.Numeric, rs.Rows)
	return nil
}
