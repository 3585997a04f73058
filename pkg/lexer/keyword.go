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
	"slices"
	"strings"
)

// KeywordRule says how an upper-cased word is classified.
type KeywordRule struct {
	Word string
	// Kind is the keyword kind, or the kind of the word it is a synonym of.
	Kind Kind
	// MinVersion is the first server version that knows the word, 0 if none.
	MinVersion Version
	// MaxVersion is the first server version that dropped the word, 0 if none.
	MaxVersion Version
	// Function marks words that also name builtin functions. Their kind is
	// decided by the FunctionHook of the scanner.
	Function bool
}

// Active reports whether the word is a keyword in server version v.
func (r KeywordRule) Active(v Version) bool {
	if r.MinVersion != 0 && v < r.MinVersion {
		return false
	}
	if r.MaxVersion != 0 && v >= r.MaxVersion {
		return false
	}
	return true
}

// Gated reports whether the rule depends on the server version.
func (r KeywordRule) Gated() bool {
	return r.MinVersion != 0 || r.MaxVersion != 0
}

var keywords = make(map[string]KeywordRule, len(keywordList))

func init() {
	for _, rule := range keywordList {
		keywords[rule.Word] = rule
	}
}

// GetKeywordRule returns the rule of word, ignoring case.
func GetKeywordRule(word string) (KeywordRule, bool) {
	rule, ok := keywords[strings.ToUpper(word)]
	return rule, ok
}

// LookupKeyword returns the kind word is scanned as in server version v,
// before any function hook or SQL mode applies. Unknown and inactive words
// are IDENTIFIER.
func LookupKeyword(word string, v Version) Kind {
	rule, ok := GetKeywordRule(word)
	if !ok || !rule.Active(v) {
		return Identifier
	}
	return rule.Kind
}

// Keywords returns a copy of the keyword table ordered by word.
func Keywords() []KeywordRule {
	rules := slices.Clone(keywordList)
	slices.SortFunc(rules, func(a, b KeywordRule) int {
		return strings.Compare(a.Word, b.Word)
	})
	return rules
}
