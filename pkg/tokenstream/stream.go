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
	"fmt"

	"github.com/sqlscan/mysqllex/pkg/lexer"
)

// Source produces visible tokens. *lexer.Scanner implements it.
type Source interface {
	Advance() lexer.Token
}

// Stream wraps a Source to provide bounded lookahead and backtracking for a
// recursive descent parser.
//
// It keeps a ring buffer of pre-fetched tokens so the parser can peek ahead
// without consuming tokens, and can go back to a saved Mark.
type Stream struct {
	src Source

	// buf is a ring buffer of pre-read tokens.
	buf [maxLookahead]lexer.Token
	// head is the index of the next token to return in buf.
	head int
	// count is the number of valid tokens in buf from head onward.
	count int
	// consumed is the number of tokens returned by Next so far.
	consumed int

	// input is the text being scanned, used for Span.
	input string
}

const maxLookahead = 8

// New creates a Stream over the visible tokens of a Scanner.
func New(s *lexer.Scanner) *Stream {
	return &Stream{src: s, input: s.Input()}
}

// NewFromSource creates a Stream over src. input is the text src scans and
// may be empty if Span is not used.
func NewFromSource(src Source, input string) *Stream {
	return &Stream{src: src, input: input}
}

// fill ensures at least n tokens are buffered.
func (s *Stream) fill(n int) {
	if n > maxLookahead {
		panic(fmt.Sprintf("tokenstream: lookahead %d exceeds %d", n, maxLookahead))
	}
	for s.count < n {
		idx := (s.head + s.count) % maxLookahead
		s.buf[idx] = s.src.Advance()
		s.count++
	}
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() lexer.Token {
	s.fill(1)
	return s.buf[s.head]
}

// PeekN returns the n-th token ahead, PeekN(0) == Peek(). n must be below 8.
func (s *Stream) PeekN(n int) lexer.Token {
	if n < 0 {
		panic(fmt.Sprintf("tokenstream: negative lookahead %d", n))
	}
	s.fill(n + 1)
	return s.buf[(s.head+n)%maxLookahead]
}

// Next consumes and returns the next token. At the end of the input it keeps
// returning EOF.
func (s *Stream) Next() lexer.Token {
	s.fill(1)
	tok := s.buf[s.head]
	s.head = (s.head + 1) % maxLookahead
	s.count--
	s.consumed++
	return tok
}

// Expect consumes the next token and reports whether it has the expected
// kind. The token is consumed either way.
func (s *Stream) Expect(expected lexer.Kind) (lexer.Token, bool) {
	tok := s.Next()
	return tok, tok.Kind == expected
}

// Accept consumes the next token if it has the expected kind. Otherwise the
// token is left in place.
func (s *Stream) Accept(expected lexer.Kind) (lexer.Token, bool) {
	tok := s.Peek()
	if tok.Kind == expected {
		s.Next()
		return tok, true
	}
	return tok, false
}

// AcceptAny consumes the next token if it has any of the expected kinds.
func (s *Stream) AcceptAny(expected ...lexer.Kind) (lexer.Token, bool) {
	tok := s.Peek()
	for _, e := range expected {
		if tok.Kind == e {
			s.Next()
			return tok, true
		}
	}
	return tok, false
}

// Mark is a position in a Stream that Restore can go back to.
type Mark struct {
	pos int
}

// Mark returns the current position.
func (s *Stream) Mark() Mark {
	return Mark{pos: s.consumed}
}

// Restore goes back to m. The tokens consumed since m, plus those buffered
// ahead, must still fit in the lookahead buffer, otherwise Restore panics.
func (s *Stream) Restore(m Mark) {
	back := s.consumed - m.pos
	if back < 0 || back+s.count > maxLookahead {
		panic(fmt.Sprintf("tokenstream: cannot restore %d tokens back with %d buffered", back, s.count))
	}
	s.head = (s.head - back + maxLookahead) % maxLookahead
	s.count += back
	s.consumed = m.pos
}

// Consumed returns the number of tokens consumed so far.
func (s *Stream) Consumed() int {
	return s.consumed
}

// Span returns the input text from the start of first to the end of last,
// hidden tokens in between included.
func (s *Stream) Span(first, last lexer.Token) string {
	if first.Offset > last.End() || last.End() > len(s.input) {
		return ""
	}
	return s.input[first.Offset:last.End()]
}
