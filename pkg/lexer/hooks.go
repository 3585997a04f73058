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
	"github.com/sqlscan/mysqllex/pkg/charset"
)

// FunctionHook decides the final kind of a keyword that can also name a
// builtin function, such as COUNT or NOW. following is the unscanned rest of
// the input.
type FunctionHook func(kind Kind, following string, mode SQLMode) Kind

// IdentityFunctionHook keeps the keyword kind. It is the default.
func IdentityFunctionHook(kind Kind, _ string, _ SQLMode) Kind {
	return kind
}

// CallSiteFunctionHook keeps the keyword kind only when the word is directly
// followed by "(", which is how the server tells a function call from a plain
// name. With IGNORE_SPACE whitespace may sit between the name and "(".
// Otherwise the word is an IDENTIFIER.
func CallSiteFunctionHook(kind Kind, following string, mode SQLMode) Kind {
	i := 0
	if mode.HasIgnoreSpace() {
		for i < len(following) && isWhitespace(following[i]) {
			i++
		}
	}
	if i < len(following) && following[i] == '(' {
		return kind
	}
	return Identifier
}

// CharsetResolver classifies an underscore-prefixed word such as "_utf8mb4".
// ok is false when the word is not a charset introducer.
type CharsetResolver func(text string) (kind Kind, ok bool)

// DefaultCharsetResolver resolves the introducers of the charsets known to
// package charset.
func DefaultCharsetResolver(text string) (Kind, bool) {
	if charset.IsIntroducer(text) {
		return UnderscoreCharset, true
	}
	return Identifier, false
}

// NopCharsetResolver never resolves, every underscore word is looked up as
// an identifier or keyword.
func NopCharsetResolver(string) (Kind, bool) {
	return Identifier, false
}
