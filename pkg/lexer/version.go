// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/pingcap/errors"
)

// Version is a server version encoded as major*10000 + minor*100 + patch,
// so 8.0.19 is 80019.
type Version int

// DefaultVersion is the server version a Scanner assumes when none is given.
const DefaultVersion Version = 80019

// NewVersion builds a Version from its parts.
func NewVersion(major, minor, patch int) Version {
	return Version(major*10000 + minor*100 + patch)
}

// Major returns the major version.
func (v Version) Major() int { return int(v) / 10000 }

// Minor returns the minor version.
func (v Version) Minor() int { return int(v) / 100 % 100 }

// Patch returns the patch version.
func (v Version) Patch() int { return int(v) % 100 }

// String renders v as "8.0.19".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// ParseVersion accepts both the dotted form ("8.0.19", "5.7.44-log", "8.0")
// and the integer form ("80019").
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty server version")
	}
	if !strings.Contains(s, ".") {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return 0, errors.Errorf("invalid server version %q", s)
		}
		return Version(n), nil
	}
	if strings.Count(s, ".") == 1 {
		s = completeVersion(s)
	}
	sv, err := semver.NewVersion(s)
	if err != nil {
		return 0, errors.Annotatef(err, "invalid server version %q", s)
	}
	if sv.Minor > 99 || sv.Patch > 99 {
		return 0, errors.Errorf("server version %q out of range", s)
	}
	return NewVersion(int(sv.Major), int(sv.Minor), int(sv.Patch)), nil
}

// completeVersion turns "8.0" and "8.0-log" into "8.0.0" and "8.0.0-log".
func completeVersion(s string) string {
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}
