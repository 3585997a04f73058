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
	"slices"
)

// Kind is the type of a token. The numbering is fixed, see kinds.go.
type Kind int

// Kinds of hidden channel tokens. They are numbered apart from the grammar
// kinds and never reach a parser.
const (
	Whitespace Kind = 1001
	Comment    Kind = 1002
)

// maxKind is the largest kind value in use.
const maxKind = Comment

// invalidKindName is returned by KindName for values that name no kind.
const invalidKindName = "<INVALID>"

// eofText is the text carried by the end-of-input token.
const eofText = "<EOF>"

var (
	kindNames  [maxKind + 1]string
	kindByName = make(map[string]Kind, len(kindNameList)+1)
)

func init() {
	for _, item := range kindNameList {
		kindNames[item.kind] = item.name
		kindByName[item.name] = item.kind
	}
	kindNames[Whitespace] = "WHITESPACE"
	kindNames[Comment] = "COMMENT"
	kindByName["WHITESPACE"] = Whitespace
	kindByName["COMMENT"] = Comment
	kindByName["EOF"] = EOF
	kindByName["INT_NUMBER"] = IntNumber
}

// KindName returns the display name of k, e.g. "SELECT_SYMBOL". Values that do
// not name a kind yield "<INVALID>".
func KindName(k Kind) string {
	if k == EOF {
		return "EOF"
	}
	if k <= 0 || k > maxKind || kindNames[k] == "" {
		return invalidKindName
	}
	return kindNames[k]
}

// KindByName is the reverse of KindName.
func KindByName(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// Kinds returns every defined kind in numeric order, EOF first. IntNumber is
// not listed apart from DecimalNumber.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNameList)+3)
	kinds = append(kinds, EOF)
	for _, item := range kindNameList {
		kinds = append(kinds, item.kind)
	}
	kinds = append(kinds, Whitespace, Comment)
	slices.Sort(kinds)
	return kinds
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return KindName(k)
}

// Valid reports whether k names a kind.
func (k Kind) Valid() bool {
	return KindName(k) != invalidKindName
}

// Category groups kinds for reporting.
type Category uint8

// Kind categories.
const (
	CategoryInvalid Category = iota
	CategoryOperator
	CategoryDataType
	CategoryKeyword
	CategoryLiteral
	CategorySpecial
	CategoryEOF
)

var categoryNames = [...]string{
	CategoryInvalid:  "invalid",
	CategoryOperator: "operator",
	CategoryDataType: "data-type",
	CategoryKeyword:  "keyword",
	CategoryLiteral:  "literal",
	CategorySpecial:  "special",
	CategoryEOF:      "eof",
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return categoryNames[CategoryInvalid]
}

// Category returns the group k belongs to. INVALID_INPUT and undefined values
// are CategoryInvalid.
func (k Kind) Category() Category {
	switch {
	case k == EOF:
		return CategoryEOF
	case !k.Valid() || k == InvalidInput:
		return CategoryInvalid
	case k <= ParamMarker, k == ConcatPipesSymbol:
		return CategoryOperator
	case k <= MultipolygonSymbol:
		return CategoryDataType
	case k >= Identifier && k <= FloatNumber,
		k == NcharText, k == LongNumber, k == UlonglongNumber:
		return CategoryLiteral
	case k >= UnderscoreCharset && k <= Linebreak, k == Whitespace, k == Comment:
		return CategorySpecial
	default:
		return CategoryKeyword
	}
}

// Channel tells whether a token is visible to a parser.
type Channel uint8

// Token channels.
const (
	DefaultChannel Channel = iota
	HiddenChannel
)

// String implements fmt.Stringer.
func (c Channel) String() string {
	if c == HiddenChannel {
		return "HIDDEN"
	}
	return "DEFAULT"
}

// Token is a single lexical unit. Text is the exact slice of the input the
// token was scanned from, quote delimiters included.
type Token struct {
	Kind    Kind
	Text    string
	Channel Channel
	// Offset is the byte offset of the first byte of Text in the input.
	Offset int
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s (%s)", t.Text, KindName(t.Kind))
}

// IsEOF reports whether t is the end-of-input token.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// Hidden reports whether t belongs to the hidden channel.
func (t Token) Hidden() bool {
	return t.Channel == HiddenChannel
}

// End returns the offset just past the token.
func (t Token) End() int {
	if t.Kind == EOF {
		return t.Offset
	}
	return t.Offset + len(t.Text)
}
