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
	"strings"

	"github.com/pingcap/errors"
)

// SQLMode is the subset of the server sql_mode that changes how text is split
// into tokens, or how a parser reads them.
type SQLMode uint32

// SQL mode flags.
const (
	ModeNone SQLMode = 0

	// ModePipesAsConcat makes || the string concatenation operator.
	ModePipesAsConcat SQLMode = 1 << 0

	// ModeHighNotPrecedence turns NOT into NOT2_SYMBOL.
	ModeHighNotPrecedence SQLMode = 1 << 1

	// ModeNoBackslashEscapes makes backslash an ordinary character in quoted text.
	ModeNoBackslashEscapes SQLMode = 1 << 2

	// ModeANSIQuotes does not change scanning. A parser checks it to read
	// DOUBLE_QUOTED_TEXT as an identifier.
	ModeANSIQuotes SQLMode = 1 << 3

	// ModeIgnoreSpace allows spaces between a function name and its "(".
	// Only CallSiteFunctionHook looks at it.
	ModeIgnoreSpace SQLMode = 1 << 4
)

var modeNames = []struct {
	mode SQLMode
	name string
}{
	{ModePipesAsConcat, "PIPES_AS_CONCAT"},
	{ModeHighNotPrecedence, "HIGH_NOT_PRECEDENCE"},
	{ModeNoBackslashEscapes, "NO_BACKSLASH_ESCAPES"},
	{ModeANSIQuotes, "ANSI_QUOTES"},
	{ModeIgnoreSpace, "IGNORE_SPACE"},
}

// combinedModes are the sql_mode shorthands that expand to several flags.
var combinedModes = map[string]SQLMode{
	"ANSI":       ModePipesAsConcat | ModeANSIQuotes | ModeIgnoreSpace,
	"DB2":        ModePipesAsConcat | ModeANSIQuotes | ModeIgnoreSpace,
	"MAXDB":      ModePipesAsConcat | ModeANSIQuotes | ModeIgnoreSpace,
	"MSSQL":      ModePipesAsConcat | ModeANSIQuotes | ModeIgnoreSpace,
	"ORACLE":     ModePipesAsConcat | ModeANSIQuotes | ModeIgnoreSpace,
	"POSTGRESQL": ModePipesAsConcat | ModeANSIQuotes | ModeIgnoreSpace,
	"MYSQL323":   ModeHighNotPrecedence,
	"MYSQL40":    ModeHighNotPrecedence,
}

// otherModes are valid sql_mode names that do not affect scanning.
var otherModes = map[string]struct{}{
	"REAL_AS_FLOAT":              {},
	"ONLY_FULL_GROUP_BY":         {},
	"STRICT_TRANS_TABLES":        {},
	"STRICT_ALL_TABLES":          {},
	"NO_ZERO_IN_DATE":            {},
	"NO_ZERO_DATE":               {},
	"ERROR_FOR_DIVISION_BY_ZERO": {},
	"NO_AUTO_CREATE_USER":        {},
	"NO_ENGINE_SUBSTITUTION":     {},
	"NO_AUTO_VALUE_ON_ZERO":      {},
	"NO_DIR_IN_CREATE":           {},
	"NO_FIELD_OPTIONS":           {},
	"NO_KEY_OPTIONS":             {},
	"NO_TABLE_OPTIONS":           {},
	"NO_UNSIGNED_SUBTRACTION":    {},
	"PAD_CHAR_TO_FULL_LENGTH":    {},
	"ALLOW_INVALID_DATES":        {},
	"TIME_TRUNCATE_FRACTIONAL":   {},
	"TRADITIONAL":                {},
}

// Has reports whether every flag of m2 is set in m.
func (m SQLMode) Has(m2 SQLMode) bool {
	return m&m2 == m2
}

// HasPipesAsConcat reports whether PIPES_AS_CONCAT is set.
func (m SQLMode) HasPipesAsConcat() bool { return m.Has(ModePipesAsConcat) }

// HasHighNotPrecedence reports whether HIGH_NOT_PRECEDENCE is set.
func (m SQLMode) HasHighNotPrecedence() bool { return m.Has(ModeHighNotPrecedence) }

// HasNoBackslashEscapes reports whether NO_BACKSLASH_ESCAPES is set.
func (m SQLMode) HasNoBackslashEscapes() bool { return m.Has(ModeNoBackslashEscapes) }

// HasANSIQuotes reports whether ANSI_QUOTES is set.
func (m SQLMode) HasANSIQuotes() bool { return m.Has(ModeANSIQuotes) }

// HasIgnoreSpace reports whether IGNORE_SPACE is set.
func (m SQLMode) HasIgnoreSpace() bool { return m.Has(ModeIgnoreSpace) }

// String renders m in sql_mode syntax.
func (m SQLMode) String() string {
	names := make([]string, 0, len(modeNames))
	for _, item := range modeNames {
		if m.Has(item.mode) {
			names = append(names, item.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseSQLMode parses a comma separated sql_mode value such as
// "ANSI,NO_BACKSLASH_ESCAPES". Names are case insensitive. Known modes that
// do not concern the lexer are accepted and dropped.
func ParseSQLMode(s string) (SQLMode, error) {
	var mode SQLMode
	for _, part := range strings.Split(s, ",") {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if m, ok := lookupModeName(name); ok {
			mode |= m
			continue
		}
		if m, ok := combinedModes[name]; ok {
			mode |= m
			continue
		}
		if _, ok := otherModes[name]; ok {
			continue
		}
		return ModeNone, errors.Errorf("unknown sql mode %q", part)
	}
	return mode, nil
}

func lookupModeName(name string) (SQLMode, bool) {
	for _, item := range modeNames {
		if item.name == name {
			return item.mode, true
		}
	}
	return ModeNone, false
}
