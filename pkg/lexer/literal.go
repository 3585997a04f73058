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

// literal.go converts the text of literal tokens into values. The scanner
// never calls these, a parser does once it needs the value.

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/pingcap/errors"
	"github.com/shopspring/decimal"
)

// ClassifyInteger returns the kind the server gives an integer literal by its
// magnitude: DECIMAL_NUMBER (INT_NUMBER) up to MaxInt32, LONG_NUMBER up to
// MaxInt64, ULONGLONG_NUMBER up to MaxUint64 and DECIMAL_NUMBER beyond.
func ClassifyInteger(text string) Kind {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return DecimalNumber
	}
	switch {
	case n <= math.MaxInt32:
		return IntNumber
	case n <= math.MaxInt64:
		return LongNumber
	default:
		return UlonglongNumber
	}
}

// IntValue returns the value of an integer literal. The result is an int64
// when it fits, a uint64 otherwise.
func IntValue(text string) (any, error) {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return nil, errors.Annotatef(err, "integer literal %s", text)
	}
	if n <= math.MaxInt64 {
		return int64(n), nil
	}
	return n, nil
}

// DecimalValue returns the exact value of a decimal literal.
func DecimalValue(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, errors.Annotatef(err, "decimal literal %s", text)
	}
	return d, nil
}

// FloatValue returns the value of a float literal.
func FloatValue(text string) (float64, error) {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Annotatef(err, "float literal %s", text)
	}
	return n, nil
}

// HexValue returns the bytes of a 0x literal. An odd number of digits is
// padded with a leading zero.
// See https://dev.mysql.com/doc/refman/8.0/en/hexadecimal-literals.html
func HexValue(text string) ([]byte, error) {
	digits, ok := strings.CutPrefix(text, "0x")
	if !ok || digits == "" {
		return nil, errors.Errorf("hex literal %s: missing 0x prefix or digits", text)
	}
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.Annotatef(err, "hex literal %s", text)
	}
	return b, nil
}

// BitValue returns the bytes of a 0b literal, right aligned in the fewest
// whole bytes.
// See https://dev.mysql.com/doc/refman/8.0/en/bit-value-literals.html
func BitValue(text string) ([]byte, error) {
	digits, ok := strings.CutPrefix(text, "0b")
	if !ok || digits == "" {
		return nil, errors.Errorf("bit literal %s: missing 0b prefix or digits", text)
	}
	b := make([]byte, (len(digits)+7)/8)
	for i := 0; i < len(digits); i++ {
		ch := digits[len(digits)-1-i]
		switch ch {
		case '0':
		case '1':
			b[len(b)-1-i/8] |= 1 << (i % 8)
		default:
			return nil, errors.Errorf("bit literal %s: invalid digit %q", text, ch)
		}
	}
	return b, nil
}

// Unquote returns the content of a quoted token. Doubled delimiters stand
// for one delimiter. Unless mode has NO_BACKSLASH_ESCAPES, backslash escapes
// are decoded the way the server does; "\%" and "\_" keep their backslash.
// An unterminated token yields the text up to the end of the input.
func Unquote(tok Token, mode SQLMode) (string, error) {
	text := tok.Text
	if len(text) == 0 {
		return "", errors.Errorf("unquote %s: empty token", KindName(tok.Kind))
	}
	quote := text[0]
	if quote != '\'' && quote != '"' && quote != '`' {
		return "", errors.Errorf("unquote %s: not quoted", KindName(tok.Kind))
	}
	escapes := !mode.HasNoBackslashEscapes()
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 1; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '\\' && escapes && i+1 < len(text):
			i++
			writeUnescaped(&sb, text[i])
		case ch == quote:
			if i+1 < len(text) && text[i+1] == quote {
				sb.WriteByte(quote)
				i++
				continue
			}
			return sb.String(), nil
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String(), nil
}

// See https://dev.mysql.com/doc/refman/8.0/en/string-literals.html
func writeUnescaped(sb *strings.Builder, ch byte) {
	switch ch {
	case '0':
		sb.WriteByte(0)
	case 'b':
		sb.WriteByte('\b')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'Z':
		sb.WriteByte(0x1a)
	case '%', '_':
		sb.WriteByte('\\')
		sb.WriteByte(ch)
	default:
		sb.WriteByte(ch)
	}
}
