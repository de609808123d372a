// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

package report

import "testing"

func TestServerVersion_IsAtLeast(t *testing.T) {
	captured := ServerVersion{Major: 14, Minor: 2}

	tests := []struct {
		name  string
		major int
		minor int
		want  bool
	}{
		{name: "equal version", major: 14, minor: 2, want: true},
		{name: "lower minor", major: 14, minor: 1, want: true},
		{name: "higher minor", major: 14, minor: 3, want: false},
		{name: "lower major higher minor", major: 13, minor: 9, want: true},
		{name: "higher major", major: 15, minor: 0, want: false},
		{name: "zero", major: 0, minor: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := captured.IsAtLeast(tt.major, tt.minor); got != tt.want {
				t.Errorf("IsAtLeast(%d, %d) = %v, want %v", tt.major, tt.minor, got, tt.want)
			}
		})
	}
}

func TestParseServerVersion(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		want        ServerVersion
		expectError bool
	}{
		{name: "plain", raw: "14.2", want: ServerVersion{14, 2}},
		{name: "build suffix", raw: "14.2 (Debian 14.2-1.pgdg110+1)", want: ServerVersion{14, 2}},
		{name: "three components", raw: "9.6.24", want: ServerVersion{9, 6}},
		{name: "beta tag", raw: "17beta1", want: ServerVersion{17, 0}},
		{name: "rc minor", raw: "16.1rc1", want: ServerVersion{16, 1}},
		{name: "surrounding space", raw: "  15.4 ", want: ServerVersion{15, 4}},
		{name: "empty", raw: "", expectError: true},
		{name: "garbage", raw: "devel", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServerVersion(tt.raw)
			if tt.expectError {
				if err == nil {
					t.Fatalf("ParseServerVersion(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseServerVersion(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseServerVersion(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
