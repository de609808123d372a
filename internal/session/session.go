// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the single database connection a run holds in
// direct mode. It opens the session, captures the server version once,
// adapts pgx results into the reporting engine's Resultset, and
// guarantees the connection is closed exactly once, interrupt included.
package session

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	apperrors "comptage/cli/internal/errors"
	"comptage/cli/internal/report"
)

// pgConn is the slice of *pgx.Conn the session uses, extracted so tests
// can substitute a mock.
type pgConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close(ctx context.Context) error
}

// Session is a live database connection plus the server version captured
// when it was established. It is exclusively owned by the run: no
// sharing, no locking beyond the idempotent close.
type Session struct {
	conn      pgConn
	version   report.ServerVersion
	closeOnce sync.Once
}

// Open establishes the database session and captures the server version
// from the server_version parameter status.
func Open(ctx context.Context, connString string) (*Session, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ConnectionFailed, "could not connect to database", err)
	}

	raw := conn.PgConn().ParameterStatus("server_version")
	version, err := report.ParseServerVersion(raw)
	if err != nil {
		// The parameter status is always sent by supported servers;
		// an unparseable value leaves the gate at 0.0 rather than
		// failing a connection that otherwise works.
		version = report.ServerVersion{}
	}

	return &Session{conn: conn, version: version}, nil
}

// Version returns the server version captured at connection time.
func (s *Session) Version() report.ServerVersion {
	return s.version
}

// Exec runs a statement that returns no rows.
func (s *Session) Exec(ctx context.Context, sql string) error {
	_, err := s.conn.Exec(ctx, sql)
	return err
}

// Query runs a row-returning query and materializes it into a Resultset,
// converting values to display strings and flagging numeric columns so
// the table renderer can right-align them. The pgx rows are always
// closed before returning.
func (s *Session) Query(ctx context.Context, sql string) (*report.Resultset, error) {
	rows, err := s.conn.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	rs := &report.Resultset{
		Columns: make([]string, len(fds)),
		Numeric: make([]bool, len(fds)),
	}
	for i, fd := range fds {
		rs.Columns[i] = string(fd.Name)
		rs.Numeric[i] = isNumericOID(fd.DataTypeOID)
	}

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = formatValue(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rs, nil
}

// Close closes the connection. Safe to call more than once; only the
// first call tears the connection down.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close(context.Background())
	})
}

// HandleInterrupts arranges for SIGINT/SIGTERM to close the session and
// terminate the run with a non-zero status. The handler performs no
// database operation beyond teardown: the connection may be mid-query
// and in an indeterminate state when the signal lands.
func (s *Session) HandleInterrupts() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		s.Close()
		os.Exit(1)
	}()
}

// isNumericOID reports whether a column type is rendered right-aligned.
func isNumericOID(oid uint32) bool {
	switch oid {
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID,
		pgtype.Float4OID, pgtype.Float8OID, pgtype.NumericOID, pgtype.OIDOID:
		return true
	}
	return false
}

// formatValue converts a pgx value to its display string. Numbers stay
// in raw form (no locale grouping); NULL renders empty, matching psql's
// default null print.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case pgtype.Numeric:
		out, err := v.Value()
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		if s, ok := out.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", out)
	case pgtype.Interval:
		return formatInterval(v)
	case pgtype.Time:
		return formatMicroseconds(v.Microseconds)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatInterval renders an interval the way psql's postgres output
// style does for the durations a time tracker produces.
func formatInterval(iv pgtype.Interval) string {
	out := ""
	if iv.Months != 0 {
		out += fmt.Sprintf("%d mons ", iv.Months)
	}
	if iv.Days != 0 {
		out += fmt.Sprintf("%d days ", iv.Days)
	}
	return out + formatMicroseconds(iv.Microseconds)
}

func formatMicroseconds(us int64) string {
	neg := ""
	if us < 0 {
		neg = "-"
		us = -us
	}
	secs := us / 1_000_000
	return fmt.Sprintf("%s%02d:%02d:%02d", neg, secs/3600, (secs/60)%60, secs%60)
}
