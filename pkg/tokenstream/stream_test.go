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

package tokenstream

import (
	"testing"

	"github.com/sqlscan/mysqllex/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func newStream(input string) *Stream {
	return New(lexer.NewScanner(input))
}

func TestPeekAndNext(t *testing.T) {
	s := newStream("SELECT a , b FROM t")
	require.Equal(t, lexer.SelectSymbol, s.Peek().Kind)
	require.Equal(t, lexer.SelectSymbol, s.PeekN(0).Kind)
	require.Equal(t, "a", s.PeekN(1).Text)
	require.Equal(t, lexer.FromSymbol, s.PeekN(4).Kind)
	require.Equal(t, lexer.EOF, s.PeekN(7).Kind)
	require.Panics(t, func() { s.PeekN(8) })
	require.Panics(t, func() { s.PeekN(-1) })

	for _, text := range []string{"SELECT", "a", ",", "b", "FROM", "t", "<EOF>", "<EOF>"} {
		require.Equal(t, text, s.Next().Text)
	}
	require.Equal(t, 8, s.Consumed())
}

func TestExpectAccept(t *testing.T) {
	s := newStream("SELECT 1 ;")
	tok, ok := s.Accept(lexer.InsertSymbol)
	require.False(t, ok)
	require.Equal(t, lexer.SelectSymbol, tok.Kind)
	require.Equal(t, 0, s.Consumed())

	_, ok = s.Accept(lexer.SelectSymbol)
	require.True(t, ok)

	tok, ok = s.AcceptAny(lexer.HexNumber, lexer.DecimalNumber)
	require.True(t, ok)
	require.Equal(t, "1", tok.Text)

	tok, ok = s.Expect(lexer.CommaSymbol)
	require.False(t, ok)
	require.Equal(t, lexer.SemicolonSymbol, tok.Kind)
	require.True(t, s.Peek().IsEOF())
}

func TestMarkRestore(t *testing.T) {
	s := newStream("a b c d e f g h i j")
	require.Equal(t, "a", s.Next().Text)
	m := s.Mark()
	for _, text := range []string{"b", "c", "d"} {
		require.Equal(t, text, s.Next().Text)
	}
	s.Restore(m)
	require.Equal(t, 1, s.Consumed())
	require.Equal(t, "b", s.Peek().Text)

	// Eight tokens back with nothing buffered still fits.
	m = s.Mark()
	for iter := 0; iter < 8; iter++ {
		s.Next()
	}
	s.Restore(m)
	require.Equal(t, "b", s.Next().Text)

	m = s.Mark()
	for iter := 0; iter < 8; iter++ {
		s.Next()
	}
	s.Peek()
	require.Panics(t, func() { s.Restore(m) })
}

func TestRestoreForward(t *testing.T) {
	s := newStream("a b")
	s.Next()
	m := s.Mark()
	s.Restore(Mark{})
	require.Equal(t, "a", s.Next().Text)
	require.Equal(t, m, s.Mark())
	require.Panics(t, func() { s.Restore(Mark{pos: 5}) })
}

func TestSpan(t *testing.T) {
	input := "SELECT a /* c */ + 1 FROM t"
	s := newStream(input)
	s.Next()
	first := s.Next()
	s.Next()
	last := s.Next()
	require.Equal(t, "a /* c */ + 1", s.Span(first, last))
	require.Equal(t, "", s.Span(last, first))
}

type sliceSource struct {
	toks []lexer.Token
}

func (s *sliceSource) Advance() lexer.Token {
	if len(s.toks) == 0 {
		return lexer.Token{Kind: lexer.EOF}
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	return tok
}

func TestNewFromSource(t *testing.T) {
	src := &sliceSource{toks: []lexer.Token{{Kind: lexer.Identifier, Text: "x"}}}
	s := NewFromSource(src, "")
	require.Equal(t, "x", s.Next().Text)
	require.True(t, s.Next().IsEOF())
}
