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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	v := NewVersion(8, 0, 19)
	require.Equal(t, DefaultVersion, v)
	require.Equal(t, 8, v.Major())
	require.Equal(t, 0, v.Minor())
	require.Equal(t, 19, v.Patch())
	require.Equal(t, "8.0.19", v.String())
	require.Equal(t, "5.7.44", Version(50744).String())
}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		input   string
		version Version
	}{
		{"80019", 80019},
		{" 50708 ", 50708},
		{"8.0.19", 80019},
		{"5.7.44-log", 50744},
		{"8.0", 80000},
		{"8.0-debug", 80000},
		{"10.11.6", 101106},
	}
	for _, c := range cases {
		v, err := ParseVersion(c.input)
		require.NoError(t, err, c.input)
		require.Equal(t, c.version, v, c.input)
	}

	for _, input := range []string{"", "abc", "-1", "0", "8.x.1", "8.100.1", "8.0.100"} {
		_, err := ParseVersion(input)
		require.Error(t, err, input)
	}
}
