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

func TestKindName(t *testing.T) {
	require.Equal(t, "EQUAL_OPERATOR", KindName(EqualOperator))
	require.Equal(t, "SELECT_SYMBOL", KindName(SelectSymbol))
	require.Equal(t, "DECIMAL_NUMBER", KindName(IntNumber))
	require.Equal(t, "NOT2_SYMBOL", Not2Symbol.String())
	require.Equal(t, "WHITESPACE", KindName(Whitespace))
	require.Equal(t, "COMMENT", KindName(Comment))
	require.Equal(t, "EOF", KindName(EOF))

	for _, k := range []Kind{0, -2, 841, 849, 1000, 1003, 1 << 20} {
		require.Equal(t, "<INVALID>", KindName(k), "kind %d", int(k))
		require.False(t, k.Valid())
	}
}

func TestKindByName(t *testing.T) {
	for _, item := range kindNameList {
		k, ok := KindByName(item.name)
		require.True(t, ok, item.name)
		require.Equal(t, item.kind, k)
		require.Equal(t, item.name, KindName(k))
		require.True(t, k.Valid())
	}
	k, ok := KindByName("INT_NUMBER")
	require.True(t, ok)
	require.Equal(t, DecimalNumber, k)
	k, ok = KindByName("EOF")
	require.True(t, ok)
	require.Equal(t, EOF, k)
	_, ok = KindByName("select_symbol")
	require.False(t, ok)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Equal(t, EOF, kinds[0])
	require.Equal(t, EqualOperator, kinds[1])
	require.Equal(t, Comment, kinds[len(kinds)-1])
	require.Len(t, kinds, len(kindNameList)+3)
	for i, k := range kinds {
		require.True(t, k.Valid())
		if i > 0 {
			require.Less(t, kinds[i-1], k)
		}
	}
}

func TestKindNamesUnique(t *testing.T) {
	seen := make(map[Kind]string, len(kindNameList))
	for _, item := range kindNameList {
		prev, dup := seen[item.kind]
		require.Falsef(t, dup, "%s and %s share kind %d", prev, item.name, int(item.kind))
		seen[item.kind] = item.name
	}
}

func TestCategory(t *testing.T) {
	cases := []struct {
		kind     Kind
		category Category
	}{
		{EqualOperator, CategoryOperator},
		{ParamMarker, CategoryOperator},
		{ConcatPipesSymbol, CategoryOperator},
		{IntSymbol, CategoryDataType},
		{MultipolygonSymbol, CategoryDataType},
		{AccessibleSymbol, CategoryKeyword},
		{SelectSymbol, CategoryKeyword},
		{Not2Symbol, CategoryKeyword},
		{ConstraintsSymbol, CategoryKeyword},
		{Identifier, CategoryLiteral},
		{SingleQuotedText, CategoryLiteral},
		{FloatNumber, CategoryLiteral},
		{LongNumber, CategoryLiteral},
		{UlonglongNumber, CategoryLiteral},
		{NcharText, CategoryLiteral},
		{UnderscoreCharset, CategorySpecial},
		{Linebreak, CategorySpecial},
		{Whitespace, CategorySpecial},
		{Comment, CategorySpecial},
		{InvalidInput, CategoryInvalid},
		{Kind(841), CategoryInvalid},
		{EOF, CategoryEOF},
	}
	for _, c := range cases {
		require.Equalf(t, c.category, c.kind.Category(), "kind %s", c.kind)
	}
	require.Equal(t, "data-type", CategoryDataType.String())
	require.Equal(t, "invalid", Category(200).String())
}

func TestToken(t *testing.T) {
	tok := Token{Kind: SelectSymbol, Text: "select", Offset: 4}
	require.Equal(t, "select (SELECT_SYMBOL)", tok.String())
	require.Equal(t, 10, tok.End())
	require.False(t, tok.IsEOF())
	require.False(t, tok.Hidden())

	tok = Token{Kind: Comment, Text: "# c", Channel: HiddenChannel}
	require.True(t, tok.Hidden())
	require.Equal(t, "HIDDEN", tok.Channel.String())
	require.Equal(t, "DEFAULT", DefaultChannel.String())

	tok = Token{Kind: EOF, Text: eofText, Offset: 2}
	require.Equal(t, 2, tok.End())
	require.Equal(t, "<EOF> (EOF)", tok.String())
}
