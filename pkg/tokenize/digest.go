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

package tokenize

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dgryski/go-farm"
	"github.com/sqlscan/mysqllex/pkg/lexer"
)

// Digest identifies statements that differ only in literal values,
// whitespace, comments and keyword case.
type Digest uint64

// String renders d as 16 hex digits.
func (d Digest) String() string {
	return fmt.Sprintf("%016x", uint64(d))
}

// DigestOf returns the digest of a normalized statement.
func DigestOf(normalized string) Digest {
	return Digest(farm.Fingerprint64([]byte(normalized)))
}

// Normalize renders the default channel tokens of a statement in a canonical
// form: literals become "?", keywords are lower case, charset introducers
// are dropped and lists made of literals only collapse to "(...)". mode
// tells whether double quoted text is an identifier.
func Normalize(toks []lexer.Token, mode lexer.SQLMode) string {
	words := make([]string, 0, len(toks))
	for _, tok := range toks {
		switch {
		case tok.Hidden():
			continue
		case tok.Kind == lexer.UnderscoreCharset:
			continue
		case isLiteral(tok.Kind, mode):
			words = append(words, "?")
		case tok.Kind == lexer.Identifier, tok.Kind == lexer.BackTickQuotedID,
			tok.Kind == lexer.DoubleQuotedText, tok.Kind == lexer.InvalidInput:
			words = append(words, tok.Text)
		case tok.Kind.Category() == lexer.CategoryKeyword, tok.Kind.Category() == lexer.CategoryDataType:
			words = append(words, strings.ToLower(tok.Text))
		default:
			words = append(words, tok.Text)
		}
	}
	return strings.Join(collapseLists(words), " ")
}

func isLiteral(kind lexer.Kind, mode lexer.SQLMode) bool {
	switch kind {
	case lexer.SingleQuotedText, lexer.HexNumber, lexer.BinNumber, lexer.DecimalNumber,
		lexer.FloatNumber, lexer.NcharText, lexer.LongNumber, lexer.UlonglongNumber, lexer.Null2Symbol:
		return true
	case lexer.DoubleQuotedText:
		return !mode.HasANSIQuotes()
	}
	return false
}

// collapseLists replaces "( ? , ? , ... )" with "( ... )".
func collapseLists(words []string) []string {
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		if words[i] == "(" {
			if end, ok := literalList(words, i); ok {
				out = append(out, "(", "...", ")")
				i = end
				continue
			}
		}
		out = append(out, words[i])
	}
	return out
}

// literalList reports whether words[open] starts a list of two or more "?"
// and returns the index of its ")".
func literalList(words []string, open int) (int, bool) {
	items := 0
	for i := open + 1; i < len(words); i += 2 {
		if words[i] != "?" || i+1 >= len(words) {
			return 0, false
		}
		items++
		switch words[i+1] {
		case ",":
		case ")":
			return i + 1, items >= 2
		default:
			return 0, false
		}
	}
	return 0, false
}

// Normalized returns the normalized text of r.
func (r *Result) Normalized(mode lexer.SQLMode) string {
	return Normalize(r.Tokens, mode)
}

// Digest returns the normalized text of r and its digest.
func (r *Result) Digest(mode lexer.SQLMode) (string, Digest) {
	normalized := r.Normalized(mode)
	return normalized, DigestOf(normalized)
}

// DigestSummary aggregates the statements that share a digest.
type DigestSummary struct {
	Digest     Digest
	Normalized string
	Count      int
	Tokens     int
}

// Summarize groups results by digest, most frequent first. Nil results are
// skipped.
func Summarize(results []*Result, mode lexer.SQLMode) []DigestSummary {
	byDigest := make(map[Digest]*DigestSummary)
	for _, res := range results {
		if res == nil {
			continue
		}
		normalized, d := res.Digest(mode)
		sum, ok := byDigest[d]
		if !ok {
			sum = &DigestSummary{Digest: d, Normalized: normalized}
			byDigest[d] = sum
		}
		sum.Count++
		sum.Tokens += res.Stats.Tokens
	}
	summaries := make([]DigestSummary, 0, len(byDigest))
	for _, sum := range byDigest {
		summaries = append(summaries, *sum)
	}
	slices.SortFunc(summaries, func(a, b DigestSummary) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Normalized, b.Normalized)
	})
	return summaries
}
