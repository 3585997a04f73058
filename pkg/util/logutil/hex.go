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

package logutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex defines a fmt.Stringer for a byte slice, so raw input can be logged
// lazily with zap.Stringer.
type Hex []byte

// String implements fmt.Stringer.
func (h Hex) String() string {
	return strings.ToUpper(hex.EncodeToString(h))
}

// Format implements fmt.Formatter.
func (h Hex) Format(s fmt.State, verb rune) {
	_, _ = s.Write([]byte(h.String()))
}

// Truncate returns at most n bytes of s, marking what was cut.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...(len:%d)", s[:n], len(s))
}
