// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

package report

import (
	"fmt"
	"strings"
)

// ServerVersion is the connected server's major/minor version, captured
// once at connection time and never mutated afterwards.
type ServerVersion struct {
	Major int
	Minor int
}

// IsAtLeast reports whether the captured server version meets the given
// minimum. It is the single seam for version-gated query variants.
func (v ServerVersion) IsAtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v ServerVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseServerVersion extracts major and minor numbers from a
// server_version parameter status value. The value may carry a build
// suffix ("14.2 (Debian 14.2-1.pgdg110+1)") or a pre-release tag
// ("17beta1"); anything past the leading digits of each component is
// ignored, and a missing minor component parses as zero.
func ParseServerVersion(s string) (ServerVersion, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i != -1 {
		s = s[:i]
	}
	if s == "" {
		return ServerVersion{}, fmt.Errorf("empty server version")
	}

	parts := strings.SplitN(s, ".", 3)
	major, ok := leadingInt(parts[0])
	if !ok {
		return ServerVersion{}, fmt.Errorf("unparseable server version %q", s)
	}
	minor := 0
	if len(parts) > 1 {
		// Pre-release suffixes like "2rc1" still carry a usable number.
		minor, _ = leadingInt(parts[1])
	}
	return ServerVersion{Major: major, Minor: minor}, nil
}

// leadingInt parses the run of digits at the start of s.
func leadingInt(s string) (int, bool) {
	n := 0
	i := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n, i > 0
}
