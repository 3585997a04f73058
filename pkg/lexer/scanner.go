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
	"strings"
)

// versionCommentDigits is the length of the version in "/*!80019 ... */".
const versionCommentDigits = 5

// scanState is everything a Scanner changes while it runs. Peek copies it
// and puts it back, so it must not hold references to mutable data.
type scanState struct {
	// pos is the offset of the next unread byte.
	pos int
	// inVersionComment is set between the header of an active version
	// comment and its closing "*/".
	inVersionComment bool
	// current is the last token returned by Advance.
	current Token
}

// Scanner splits MySQL text into tokens.
//
// A Scanner is owned by a single goroutine. It never fails: bytes it does not
// understand become INVALID_INPUT tokens, unterminated quotes and comments end
// at the end of the input.
type Scanner struct {
	input    string
	version  Version
	mode     SQLMode
	funcHook FunctionHook
	charsets CharsetResolver

	scanState
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithVersion sets the server version that keyword gates and version
// comments are checked against.
func WithVersion(v Version) Option {
	return func(s *Scanner) {
		s.version = v
	}
}

// WithSQLMode sets the SQL mode flags.
func WithSQLMode(mode SQLMode) Option {
	return func(s *Scanner) {
		s.mode = mode
	}
}

// WithFunctionHook replaces IdentityFunctionHook. A nil hook restores it.
func WithFunctionHook(h FunctionHook) Option {
	return func(s *Scanner) {
		if h == nil {
			h = IdentityFunctionHook
		}
		s.funcHook = h
	}
}

// WithCharsetResolver replaces DefaultCharsetResolver. A nil resolver means
// NopCharsetResolver.
func WithCharsetResolver(r CharsetResolver) Option {
	return func(s *Scanner) {
		if r == nil {
			r = NopCharsetResolver
		}
		s.charsets = r
	}
}

// NewScanner returns a Scanner over input.
func NewScanner(input string, opts ...Option) *Scanner {
	s := &Scanner{
		input:    input,
		version:  DefaultVersion,
		funcHook: IdentityFunctionHook,
		charsets: DefaultCharsetResolver,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Version returns the server version of s.
func (s *Scanner) Version() Version {
	return s.version
}

// SQLMode returns the SQL mode of s.
func (s *Scanner) SQLMode() SQLMode {
	return s.mode
}

// Input returns the text being scanned.
func (s *Scanner) Input() string {
	return s.input
}

// Pos returns the offset of the next unread byte.
func (s *Scanner) Pos() int {
	return s.pos
}

// Current returns the token returned by the last Advance call.
func (s *Scanner) Current() Token {
	return s.current
}

// Next scans one token of either channel. At the end of the input it returns
// the EOF token, and keeps doing so.
func (s *Scanner) Next() Token {
	if s.pos >= len(s.input) {
		return Token{Kind: EOF, Text: eofText, Offset: len(s.input)}
	}
	start := s.pos
	kind, channel := s.scan()
	return Token{Kind: kind, Text: s.input[start:s.pos], Channel: channel, Offset: start}
}

// Advance returns the next token of the default channel. Hidden tokens are
// skipped.
func (s *Scanner) Advance() Token {
	for {
		tok := s.Next()
		if tok.Channel == DefaultChannel {
			s.current = tok
			return tok
		}
	}
}

// Peek returns the k-th token Advance would return, without moving s.
// Peek(1) is the next token. k must be positive.
func (s *Scanner) Peek(k int) Token {
	if k <= 0 {
		panic(fmt.Sprintf("lexer: peek distance must be positive, got %d", k))
	}
	saved := s.scanState
	var tok Token
	for i := 0; i < k; i++ {
		tok = s.Advance()
	}
	s.scanState = saved
	return tok
}

func (s *Scanner) peekByte(n int) byte {
	if s.pos+n < len(s.input) {
		return s.input[s.pos+n]
	}
	return 0
}

func (s *Scanner) hasPrefix(prefix string) bool {
	return strings.HasPrefix(s.input[s.pos:], prefix)
}

// emit consumes n bytes and returns kind on the default channel.
func (s *Scanner) emit(n int, kind Kind) (Kind, Channel) {
	s.pos += n
	return kind, DefaultChannel
}

// scan consumes at least one byte and classifies it. s.pos < len(s.input).
func (s *Scanner) scan() (Kind, Channel) {
	ch := s.input[s.pos]
	switch {
	case ch == '\'' || ch == '"' || ch == '`':
		return s.scanQuoted(ch), DefaultChannel
	case isDigit(ch), ch == '.' && isDigit(s.peekByte(1)):
		return s.scanNumber(), DefaultChannel
	}

	next := s.peekByte(1)
	switch ch {
	case '<':
		switch {
		case s.hasPrefix("<=>"):
			return s.emit(3, NullSafeEqualOperator)
		case next == '=':
			return s.emit(2, LessOrEqualOperator)
		case next == '>':
			return s.emit(2, NotEqualOperator)
		case next == '<':
			return s.emit(2, ShiftLeftOperator)
		}
		return s.emit(1, LessThanOperator)
	case '>':
		switch next {
		case '=':
			return s.emit(2, GreaterOrEqualOperator)
		case '>':
			return s.emit(2, ShiftRightOperator)
		}
		return s.emit(1, GreaterThanOperator)
	case ':':
		if next == '=' {
			return s.emit(2, AssignOperator)
		}
		return s.emit(1, ColonSymbol)
	case '-':
		return s.scanMinus()
	case '/':
		if next == '*' {
			s.scanBlockComment()
			return Comment, HiddenChannel
		}
		return s.emit(1, DivOperator)
	case '*':
		if s.inVersionComment && next == '/' {
			s.inVersionComment = false
			s.pos += 2
			return Comment, HiddenChannel
		}
		return s.emit(1, MultOperator)
	case '&':
		if next == '&' {
			return s.emit(2, LogicalAndOperator)
		}
		return s.emit(1, BitwiseAndOperator)
	case '|':
		if next == '|' {
			if s.mode.HasPipesAsConcat() {
				return s.emit(2, ConcatPipesSymbol)
			}
			return s.emit(2, LogicalOrOperator)
		}
		return s.emit(1, BitwiseOrOperator)
	case '!':
		if next == '=' {
			return s.emit(2, NotEqualOperator)
		}
		return s.emit(1, LogicalNotOperator)
	case '@':
		if next == '@' {
			return s.emit(2, AtAtSignSymbol)
		}
		return s.emit(1, AtSignSymbol)
	case '=':
		return s.emit(1, EqualOperator)
	case '+':
		return s.emit(1, PlusOperator)
	case '%':
		return s.emit(1, ModOperator)
	case '^':
		return s.emit(1, BitwiseXorOperator)
	case '~':
		return s.emit(1, BitwiseNotOperator)
	case ',':
		return s.emit(1, CommaSymbol)
	case ';':
		return s.emit(1, SemicolonSymbol)
	case '(':
		return s.emit(1, OpenParSymbol)
	case ')':
		return s.emit(1, CloseParSymbol)
	case '{':
		return s.emit(1, OpenCurlySymbol)
	case '}':
		return s.emit(1, CloseCurlySymbol)
	case '?':
		return s.emit(1, ParamMarker)
	case '.':
		return s.emit(1, DotSymbol)
	case '#':
		s.skipLine()
		return Comment, HiddenChannel
	case '_':
		return s.scanUnderscore(), DefaultChannel
	case '\\':
		if next == 'N' {
			return s.emit(2, Null2Symbol)
		}
		return s.emit(1, InvalidInput)
	}

	switch {
	case isWhitespace(ch):
		for s.pos < len(s.input) && isWhitespace(s.input[s.pos]) {
			s.pos++
		}
		return Whitespace, HiddenChannel
	case isLetter(ch):
		return s.resolveWord(s.scanWord()), DefaultChannel
	}
	return s.emit(1, InvalidInput)
}

// scanMinus handles "-", "->", "->>" and "-- " comments.
func (s *Scanner) scanMinus() (Kind, Channel) {
	switch s.peekByte(1) {
	case '>':
		if s.peekByte(2) == '>' && s.version >= 50713 {
			return s.emit(3, JSONUnquotedSeparatorSymbol)
		}
		if s.version >= 50708 {
			return s.emit(2, JSONSeparatorSymbol)
		}
	case '-':
		if isWhitespace(s.peekByte(2)) {
			s.skipLine()
			return Comment, HiddenChannel
		}
	}
	return s.emit(1, MinusOperator)
}

// skipLine consumes up to, not including, the next line break.
func (s *Scanner) skipLine() {
	for s.pos < len(s.input) && !isLineEnd(s.input[s.pos]) {
		s.pos++
	}
}

// scanBlockComment consumes "/*" and what belongs to the same hidden token:
// the whole comment, or only the header of an active version comment.
func (s *Scanner) scanBlockComment() {
	s.pos += 2
	if s.pos >= len(s.input) || s.input[s.pos] != '!' {
		s.skipComment()
		return
	}
	s.pos++
	start := s.pos
	s.skipWhile(isDigit)
	digits := s.input[start:s.pos]
	if digits == "" || s.versionActive(digits) {
		// The body is scanned as code, the matching "*/" is hidden.
		s.inVersionComment = true
		return
	}
	s.skipComment()
}

// versionActive reports whether the server version in a "/*!NNNNN" header is
// satisfied. Short or overlong headers never are.
func (s *Scanner) versionActive(digits string) bool {
	if len(digits) < versionCommentDigits || len(digits) > versionCommentDigits+1 {
		return false
	}
	v := 0
	for i := 0; i < len(digits); i++ {
		v = v*10 + int(digits[i]-'0')
	}
	return Version(v) <= s.version
}

// skipComment consumes through the next "*/", or to the end of the input.
func (s *Scanner) skipComment() {
	if i := strings.Index(s.input[s.pos:], "*/"); i >= 0 {
		s.pos += i + 2
		return
	}
	s.pos = len(s.input)
}

// scanQuoted consumes quoted text delimited by quote. A quote directly after
// the closing one continues the same token.
func (s *Scanner) scanQuoted(quote byte) Kind {
	escapes := !s.mode.HasNoBackslashEscapes()
	for s.pos < len(s.input) && s.input[s.pos] == quote {
		s.pos++
		for s.pos < len(s.input) {
			ch := s.input[s.pos]
			if ch == '\\' && escapes {
				s.pos = min(s.pos+2, len(s.input))
				continue
			}
			s.pos++
			if ch == quote {
				break
			}
		}
	}
	switch quote {
	case '\'':
		return SingleQuotedText
	case '"':
		return DoubleQuotedText
	case '`':
		return BackTickQuotedID
	}
	panic(fmt.Sprintf("lexer: scanQuoted called on %q", quote))
}

// scanNumber consumes a numeric literal. It starts on a digit, or on a "."
// followed by a digit.
func (s *Scanner) scanNumber() Kind {
	if s.input[s.pos] == '0' {
		switch s.peekByte(1) {
		case 'x':
			if isHexDigit(s.peekByte(2)) {
				s.pos += 2
				s.skipWhile(isHexDigit)
				return HexNumber
			}
		case 'b':
			if isBinDigit(s.peekByte(2)) {
				s.pos += 2
				s.skipWhile(isBinDigit)
				return BinNumber
			}
		}
	}
	s.skipWhile(isDigit)
	if s.pos < len(s.input) && s.input[s.pos] == '.' && isDigit(s.peekByte(1)) {
		s.pos++
		s.skipWhile(isDigit)
	}
	if s.scanExponent() {
		return FloatNumber
	}
	return DecimalNumber
}

// scanExponent consumes "e[+-]digits" if it is complete.
func (s *Scanner) scanExponent() bool {
	if s.pos >= len(s.input) {
		return false
	}
	if ch := s.input[s.pos]; ch != 'e' && ch != 'E' {
		return false
	}
	n := 1
	if sign := s.peekByte(1); sign == '+' || sign == '-' {
		n++
	}
	if !isDigit(s.peekByte(n)) {
		return false
	}
	s.pos += n
	s.skipWhile(isDigit)
	return true
}

func (s *Scanner) skipWhile(pred func(byte) bool) {
	for s.pos < len(s.input) && pred(s.input[s.pos]) {
		s.pos++
	}
}

// scanWord consumes an identifier-shaped run and returns it.
func (s *Scanner) scanWord() string {
	start := s.pos
	s.skipWhile(isIdentChar)
	return s.input[start:s.pos]
}

// scanUnderscore handles "_" and charset introducers like "_utf8mb4".
func (s *Scanner) scanUnderscore() Kind {
	if !isLetter(s.peekByte(1)) {
		s.pos++
		return UnderlineSymbol
	}
	word := s.scanWord()
	if kind, ok := s.charsets(word); ok {
		return kind
	}
	return s.resolveWord(word)
}

// resolveWord classifies a word that was just consumed.
func (s *Scanner) resolveWord(word string) Kind {
	rule, ok := keywords[strings.ToUpper(word)]
	if !ok || !rule.Active(s.version) {
		return Identifier
	}
	kind := rule.Kind
	if rule.Function {
		kind = s.funcHook(kind, s.input[s.pos:], s.mode)
	}
	if kind == NotSymbol && s.mode.HasHighNotPrecedence() {
		kind = Not2Symbol
	}
	return kind
}

// Tokenize returns the default channel tokens of input, EOF excluded.
func Tokenize(input string, opts ...Option) []Token {
	s := NewScanner(input, opts...)
	var toks []Token
	for tok := s.Advance(); tok.Kind != EOF; tok = s.Advance() {
		toks = append(toks, tok)
	}
	return toks
}

// TokenizeAll returns every token of input, hidden ones included, EOF
// excluded. Joining their texts gives back input.
func TokenizeAll(input string, opts ...Option) []Token {
	s := NewScanner(input, opts...)
	var toks []Token
	for tok := s.Next(); tok.Kind != EOF; tok = s.Next() {
		toks = append(toks, tok)
	}
	return toks
}
