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
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testCaseItem struct {
	str string
	tok Kind
}

// runTest checks the first visible token of every input.
func runTest(t *testing.T, table []testCaseItem, opts ...Option) {
	for _, v := range table {
		tok := NewScanner(v.str, opts...).Advance()
		require.Equalf(t, v.tok, tok.Kind, "input %q, got %s", v.str, tok)
	}
}

type tokenItem struct {
	text string
	kind Kind
}

// requireTokens checks every visible token of input.
func requireTokens(t *testing.T, input string, expected []tokenItem, opts ...Option) {
	toks := Tokenize(input, opts...)
	got := make([]tokenItem, 0, len(toks))
	for _, tok := range toks {
		got = append(got, tokenItem{tok.Text, tok.Kind})
	}
	require.Equalf(t, expected, got, "input %q", input)
}

func TestSelectOne(t *testing.T) {
	s := NewScanner("SELECT 1")

	tok := s.Advance()
	require.Equal(t, Token{Kind: SelectSymbol, Text: "SELECT", Channel: DefaultChannel, Offset: 0}, tok)
	require.Equal(t, tok, s.Current())

	tok = s.Advance()
	require.Equal(t, Token{Kind: DecimalNumber, Text: "1", Channel: DefaultChannel, Offset: 7}, tok)

	for iter := 0; iter < 3; iter++ {
		tok = s.Advance()
		require.Equal(t, EOF, tok.Kind)
		require.Equal(t, "<EOF>", tok.Text)
		require.Equal(t, 8, tok.Offset)
		require.True(t, tok.IsEOF())
	}
}

func TestSingleChar(t *testing.T) {
	table := []testCaseItem{
		{"=", EqualOperator},
		{"+", PlusOperator},
		{"-", MinusOperator},
		{"*", MultOperator},
		{"/", DivOperator},
		{"%", ModOperator},
		{"!", LogicalNotOperator},
		{"~", BitwiseNotOperator},
		{"&", BitwiseAndOperator},
		{"^", BitwiseXorOperator},
		{"|", BitwiseOrOperator},
		{".", DotSymbol},
		{",", CommaSymbol},
		{";", SemicolonSymbol},
		{":", ColonSymbol},
		{"(", OpenParSymbol},
		{")", CloseParSymbol},
		{"{", OpenCurlySymbol},
		{"}", CloseCurlySymbol},
		{"_", UnderlineSymbol},
		{"@", AtSignSymbol},
		{"?", ParamMarker},
		{"<", LessThanOperator},
		{">", GreaterThanOperator},
	}
	runTest(t, table)
}

func TestOperators(t *testing.T) {
	table := []testCaseItem{
		{"<=>", NullSafeEqualOperator},
		{"<=", LessOrEqualOperator},
		{"<>", NotEqualOperator},
		{"<<", ShiftLeftOperator},
		{">=", GreaterOrEqualOperator},
		{">>", ShiftRightOperator},
		{":=", AssignOperator},
		{"->>", JSONUnquotedSeparatorSymbol},
		{"->", JSONSeparatorSymbol},
		{"&&", LogicalAndOperator},
		{"||", LogicalOrOperator},
		{"!=", NotEqualOperator},
		{"@@", AtAtSignSymbol},
		{`\N`, Null2Symbol},
	}
	runTest(t, table)
}

func TestMaximalMunch(t *testing.T) {
	requireTokens(t, "a<=>b", []tokenItem{
		{"a", Identifier}, {"<=>", NullSafeEqualOperator}, {"b", Identifier},
	})
	requireTokens(t, "<=>>", []tokenItem{
		{"<=>", NullSafeEqualOperator}, {">", GreaterThanOperator},
	})
	requireTokens(t, "c->>'$.a'", []tokenItem{
		{"c", Identifier}, {"->>", JSONUnquotedSeparatorSymbol}, {"'$.a'", SingleQuotedText},
	})
	requireTokens(t, "<<=", []tokenItem{
		{"<<", ShiftLeftOperator}, {"=", EqualOperator},
	})
	requireTokens(t, "@@session.x", []tokenItem{
		{"@@", AtAtSignSymbol}, {"session", SessionSymbol}, {".", DotSymbol}, {"x", Identifier},
	})
	requireTokens(t, "!!=", []tokenItem{
		{"!", LogicalNotOperator}, {"!=", NotEqualOperator},
	})
}

func TestJSONOperatorVersion(t *testing.T) {
	requireTokens(t, "c->'$.a'", []tokenItem{
		{"c", Identifier}, {"-", MinusOperator}, {">", GreaterThanOperator}, {"'$.a'", SingleQuotedText},
	}, WithVersion(50707))
	requireTokens(t, "c->'$.a'", []tokenItem{
		{"c", Identifier}, {"->", JSONSeparatorSymbol}, {"'$.a'", SingleQuotedText},
	}, WithVersion(50708))
	requireTokens(t, "c->>'$.a'", []tokenItem{
		{"c", Identifier}, {"->", JSONSeparatorSymbol}, {">", GreaterThanOperator}, {"'$.a'", SingleQuotedText},
	}, WithVersion(50712))
	requireTokens(t, "c->>'$.a'", []tokenItem{
		{"c", Identifier}, {"->>", JSONUnquotedSeparatorSymbol}, {"'$.a'", SingleQuotedText},
	}, WithVersion(50713))
}

func TestLiteral(t *testing.T) {
	table := []testCaseItem{
		{`'''a'''`, SingleQuotedText},
		{`''a''`, SingleQuotedText},
		{`""a""`, DoubleQuotedText},
		{"`a``b`", BackTickQuotedID},
		{`\'a\'`, InvalidInput},
		{"0.2314", DecimalNumber},
		{".2314", DecimalNumber},
		{"132.3e231", FloatNumber},
		{"132e-2", FloatNumber},
		{".5E+3", FloatNumber},
		{"23416", DecimalNumber},
		{"0", IntNumber},
		{"0x3c26", HexNumber},
		{"0xABCdef", HexNumber},
		{"0b01", BinNumber},
	}
	runTest(t, table)
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		input    string
		expected []tokenItem
	}{
		{"1.", []tokenItem{{"1", DecimalNumber}, {".", DotSymbol}}},
		{"1.5", []tokenItem{{"1.5", DecimalNumber}}},
		{"1.5e", []tokenItem{{"1.5", DecimalNumber}, {"e", Identifier}}},
		{"1e+5", []tokenItem{{"1e+5", FloatNumber}}},
		{"1e-", []tokenItem{{"1", DecimalNumber}, {"e", Identifier}, {"-", MinusOperator}}},
		{"1.2.3", []tokenItem{{"1.2", DecimalNumber}, {".3", DecimalNumber}}},
		{"0x", []tokenItem{{"0", DecimalNumber}, {"x", Identifier}}},
		{"0xZ", []tokenItem{{"0", DecimalNumber}, {"xZ", Identifier}}},
		{"0b2", []tokenItem{{"0", DecimalNumber}, {"b2", Identifier}}},
		{"0X1F", []tokenItem{{"0", DecimalNumber}, {"X1F", Identifier}}},
		{"0x1fg", []tokenItem{{"0x1f", HexNumber}, {"g", Identifier}}},
		{"0b0110", []tokenItem{{"0b0110", BinNumber}}},
		{"t.col", []tokenItem{{"t", Identifier}, {".", DotSymbol}, {"col", Identifier}}},
		{"-1", []tokenItem{{"-", MinusOperator}, {"1", DecimalNumber}}},
	}
	for _, c := range cases {
		requireTokens(t, c.input, c.expected)
	}
}

func TestQuotedText(t *testing.T) {
	requireTokens(t, `'It''s here'`, []tokenItem{{`'It''s here'`, SingleQuotedText}})
	requireTokens(t, `'ab' 'cd'`, []tokenItem{{`'ab'`, SingleQuotedText}, {`'cd'`, SingleQuotedText}})
	requireTokens(t, `'ab''cd'`, []tokenItem{{`'ab''cd'`, SingleQuotedText}})
	requireTokens(t, `"say ""hi"""`, []tokenItem{{`"say ""hi"""`, DoubleQuotedText}})
	requireTokens(t, "`a``b` c", []tokenItem{{"`a``b`", BackTickQuotedID}, {"c", Identifier}})
	requireTokens(t, `'a\\'`, []tokenItem{{`'a\\'`, SingleQuotedText}})

	// Unterminated text runs to the end of the input.
	requireTokens(t, `'abc`, []tokenItem{{`'abc`, SingleQuotedText}})
	requireTokens(t, `'abc\`, []tokenItem{{`'abc\`, SingleQuotedText}})
	requireTokens(t, "`abc", []tokenItem{{"`abc", BackTickQuotedID}})
	requireTokens(t, `'''`, []tokenItem{{`'''`, SingleQuotedText}})
}

func TestBackslashEscapes(t *testing.T) {
	requireTokens(t, `'a\'b'`, []tokenItem{{`'a\'b'`, SingleQuotedText}})
	requireTokens(t, `'a\'b'`, []tokenItem{
		{`'a\'`, SingleQuotedText}, {"b", Identifier}, {"'", SingleQuotedText},
	}, WithSQLMode(ModeNoBackslashEscapes))
	requireTokens(t, `"a\"b"`, []tokenItem{{`"a\"b"`, DoubleQuotedText}})
	requireTokens(t, `"a\"b"`, []tokenItem{
		{`"a\"`, DoubleQuotedText}, {"b", Identifier}, {`"`, DoubleQuotedText},
	}, WithSQLMode(ModeNoBackslashEscapes))
	requireTokens(t, "`a\\`b`", []tokenItem{{"`a\\`b`", BackTickQuotedID}})
}

func TestANSIQuotes(t *testing.T) {
	for _, mode := range []SQLMode{ModeNone, ModeANSIQuotes} {
		requireTokens(t, `SELECT "a"`, []tokenItem{
			{"SELECT", SelectSymbol}, {`"a"`, DoubleQuotedText},
		}, WithSQLMode(mode))
	}
}

func TestPipesAsConcat(t *testing.T) {
	runTest(t, []testCaseItem{{"||", LogicalOrOperator}})
	runTest(t, []testCaseItem{{"||", ConcatPipesSymbol}}, WithSQLMode(ModePipesAsConcat))

	requireTokens(t, "a||b", []tokenItem{
		{"a", Identifier}, {"||", LogicalOrOperator}, {"b", Identifier},
	})
	requireTokens(t, "a||b", []tokenItem{
		{"a", Identifier}, {"||", ConcatPipesSymbol}, {"b", Identifier},
	}, WithSQLMode(ModePipesAsConcat))
	requireTokens(t, "a|||b", []tokenItem{
		{"a", Identifier}, {"||", ConcatPipesSymbol}, {"|", BitwiseOrOperator}, {"b", Identifier},
	}, WithSQLMode(ModePipesAsConcat))
}

func TestHighNotPrecedence(t *testing.T) {
	runTest(t, []testCaseItem{{"NOT", NotSymbol}, {"not", NotSymbol}})
	runTest(t, []testCaseItem{{"NOT", Not2Symbol}, {"Not", Not2Symbol}}, WithSQLMode(ModeHighNotPrecedence))
	runTest(t, []testCaseItem{{"NOTE", Identifier}}, WithSQLMode(ModeHighNotPrecedence))
}

func TestComment(t *testing.T) {
	table := []testCaseItem{
		{"-- select --\n1", DecimalNumber},
		{"/*!40101 SET character_set_client = utf8 */;", SetSymbol},
		{"/* some comments */ SELECT ", SelectSymbol},
		{"-- comment continues to the end of line\nSELECT", SelectSymbol},
		{"# comment continues to the end of line\nSELECT", SelectSymbol},
		{"#comment\n123", DecimalNumber},
		{"--\t\n1", DecimalNumber},
		{"--5", MinusOperator},
		{"--", MinusOperator},
		{"-- ", EOF},
		{"#", EOF},
		{"/* unterminated", EOF},
		{"/**/1", DecimalNumber},
	}
	runTest(t, table)

	requireTokens(t, "--x", []tokenItem{{"-", MinusOperator}, {"-", MinusOperator}, {"x", Identifier}})
	requireTokens(t, "SELECT 1 -- one\r\n, 2", []tokenItem{
		{"SELECT", SelectSymbol}, {"1", DecimalNumber}, {",", CommaSymbol}, {"2", DecimalNumber},
	})
	requireTokens(t, "2*/3", []tokenItem{
		{"2", DecimalNumber}, {"*", MultOperator}, {"/", DivOperator}, {"3", DecimalNumber},
	})
}

func TestVersionComment(t *testing.T) {
	input := "/*!80000 SELECT */ 1"
	toks := TokenizeAll(input)
	expected := []Token{
		{Kind: Comment, Text: "/*!80000", Channel: HiddenChannel, Offset: 0},
		{Kind: Whitespace, Text: " ", Channel: HiddenChannel, Offset: 8},
		{Kind: SelectSymbol, Text: "SELECT", Channel: DefaultChannel, Offset: 9},
		{Kind: Whitespace, Text: " ", Channel: HiddenChannel, Offset: 15},
		{Kind: Comment, Text: "*/", Channel: HiddenChannel, Offset: 16},
		{Kind: Whitespace, Text: " ", Channel: HiddenChannel, Offset: 18},
		{Kind: DecimalNumber, Text: "1", Channel: DefaultChannel, Offset: 19},
	}
	require.Equal(t, expected, toks)

	requireTokens(t, input, []tokenItem{{"1", DecimalNumber}}, WithVersion(50700))
	requireTokens(t, input, []tokenItem{{"SELECT", SelectSymbol}, {"1", DecimalNumber}}, WithVersion(80000))
	requireTokens(t, "/*!800001 SELECT */ 1", []tokenItem{{"1", DecimalNumber}}, WithVersion(80019))

	// Executable comments without a version are always code.
	requireTokens(t, "/*! STRAIGHT_JOIN */ a", []tokenItem{
		{"STRAIGHT_JOIN", StraightJoinSymbol}, {"a", Identifier},
	}, WithVersion(50000))

	// Short headers are malformed and never satisfied.
	requireTokens(t, "/*!123 SELECT */ 1", []tokenItem{{"1", DecimalNumber}})

	// Inside an active version comment "*/" closes it, a second one is code.
	requireTokens(t, "/*!50000 a */ */", []tokenItem{
		{"a", Identifier}, {"*", MultOperator}, {"/", DivOperator},
	})

	// Block comments inside the body stay hidden.
	requireTokens(t, "/*!50000 a /* b */ c */ d", []tokenItem{
		{"a", Identifier}, {"c", Identifier}, {"d", Identifier},
	})
}

func TestVersionGates(t *testing.T) {
	cases := []struct {
		word    string
		version Version
		kind    Kind
	}{
		{"ACCOUNT", 50706, Identifier},
		{"ACCOUNT", 50707, AccountSymbol},
		{"account", 80019, AccountSymbol},
		{"ROW", 79999, RowSymbol},
		{"ROW", 80000, Identifier},
		{"ANALYSE", 50744, AnalyseSymbol},
		{"ANALYSE", 80000, Identifier},
		{"REMOTE", 80002, Identifier},
		{"REMOTE", 80003, RemoteSymbol},
		{"REMOTE", 80013, RemoteSymbol},
		{"REMOTE", 80014, Identifier},
		{"MAX_STATEMENT_TIME", 50704, Identifier},
		{"MAX_STATEMENT_TIME", 50705, MaxStatementTimeSymbol},
		{"MAX_STATEMENT_TIME", 50707, MaxStatementTimeSymbol},
		{"MAX_STATEMENT_TIME", 50708, Identifier},
		{"JSON_TABLE", 50744, Identifier},
		{"JSON_TABLE", 80000, JSONTableSymbol},
	}
	for _, c := range cases {
		tok := NewScanner(c.word, WithVersion(c.version)).Advance()
		require.Equalf(t, c.kind, tok.Kind, "%s at %d", c.word, c.version)
		require.Equal(t, c.word, tok.Text)
	}
}

func TestKeywordsAndSynonyms(t *testing.T) {
	table := []testCaseItem{
		{"select", SelectSymbol},
		{"SeLeCt", SelectSymbol},
		{"SCHEMA", DatabaseSymbol},
		{"schemas", DatabasesSymbol},
		{"DISTINCTROW", DistinctSymbol},
		{"FIELDS", ColumnsSymbol},
		{"RLIKE", RegexpSymbol},
		{"INT4", IntSymbol},
		{"INTEGER", IntSymbol},
		{"CHARACTER", CharSymbol},
		{"CURRENT_DATE", CurdateSymbol},
		{"SUBSTR", SubstringSymbol},
		{"IO_AFTER_GTIDS", Identifier},
		{"selects", Identifier},
		{"a$b_1", Identifier},
	}
	runTest(t, table)
	requireTokens(t, "schema", []tokenItem{{"schema", DatabaseSymbol}})
}

func TestFunctionHook(t *testing.T) {
	runTest(t, []testCaseItem{{"COUNT", CountSymbol}, {"count (*)", CountSymbol}})

	callSite := WithFunctionHook(CallSiteFunctionHook)
	runTest(t, []testCaseItem{
		{"count(*)", CountSymbol},
		{"count (*)", Identifier},
		{"count", Identifier},
		{"NOW()", NowSymbol},
		{"SELECT", SelectSymbol},
	}, callSite)
	runTest(t, []testCaseItem{
		{"count (*)", CountSymbol},
		{"count \n\t(*)", CountSymbol},
		{"count x", Identifier},
	}, callSite, WithSQLMode(ModeIgnoreSpace))

	var seen []string
	hook := func(kind Kind, following string, mode SQLMode) Kind {
		seen = append(seen, following)
		require.Equal(t, ModePipesAsConcat, mode)
		return kind
	}
	requireTokens(t, "SUM(a) + TRIM", []tokenItem{
		{"SUM", SumSymbol}, {"(", OpenParSymbol}, {"a", Identifier}, {")", CloseParSymbol},
		{"+", PlusOperator}, {"TRIM", TrimSymbol},
	}, WithFunctionHook(hook), WithSQLMode(ModePipesAsConcat))
	require.Equal(t, []string{"(a) + TRIM", ""}, seen)

	// A nil hook restores the identity hook.
	runTest(t, []testCaseItem{{"count", CountSymbol}}, WithFunctionHook(nil))
}

func TestUnderscore(t *testing.T) {
	requireTokens(t, "_utf8mb4'abc'", []tokenItem{
		{"_utf8mb4", UnderscoreCharset}, {"'abc'", SingleQuotedText},
	})
	requireTokens(t, "_LATIN1 0x41", []tokenItem{
		{"_LATIN1", UnderscoreCharset}, {"0x41", HexNumber},
	})
	requireTokens(t, "_1", []tokenItem{{"_", UnderlineSymbol}, {"1", DecimalNumber}})
	requireTokens(t, "_foo_bar", []tokenItem{{"_foo_bar", Identifier}})
	requireTokens(t, "_utf8mb4", []tokenItem{{"_utf8mb4", Identifier}}, WithCharsetResolver(NopCharsetResolver))
	requireTokens(t, "_utf8mb4", []tokenItem{{"_utf8mb4", Identifier}}, WithCharsetResolver(nil))

	custom := func(text string) (Kind, bool) {
		if text == "_custom" {
			return UnderscoreCharset, true
		}
		return Identifier, false
	}
	requireTokens(t, "_custom _latin1", []tokenItem{
		{"_custom", UnderscoreCharset}, {"_latin1", Identifier},
	}, WithCharsetResolver(custom))
}

func TestInvalidInput(t *testing.T) {
	requireTokens(t, "[a]", []tokenItem{{"[", InvalidInput}, {"a", Identifier}, {"]", InvalidInput}})
	requireTokens(t, "$", []tokenItem{{"$", InvalidInput}})
	requireTokens(t, `\x`, []tokenItem{{`\`, InvalidInput}, {"x", Identifier}})
	requireTokens(t, "\x00", []tokenItem{{"\x00", InvalidInput}})
	requireTokens(t, "é", []tokenItem{{"\xc3", InvalidInput}, {"\xa9", InvalidInput}})
}

func TestHiddenTokens(t *testing.T) {
	toks := TokenizeAll("a /* c */\n# d\nb")
	kinds := make([]Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
		require.Equal(t, tok.Kind == Whitespace || tok.Kind == Comment, tok.Hidden())
	}
	require.Equal(t, []Kind{Identifier, Whitespace, Comment, Whitespace, Comment, Whitespace, Identifier}, kinds)
}

func TestPeek(t *testing.T) {
	s := NewScanner("SELECT a, b FROM t")
	require.Panics(t, func() { s.Peek(0) })
	require.Panics(t, func() { s.Peek(-1) })

	require.Equal(t, SelectSymbol, s.Peek(1).Kind)
	require.Equal(t, Identifier, s.Peek(2).Kind)
	require.Equal(t, CommaSymbol, s.Peek(3).Kind)
	require.Equal(t, 0, s.Pos())
	require.Equal(t, Token{}, s.Current())

	require.Equal(t, SelectSymbol, s.Advance().Kind)
	current := s.Current()
	require.Equal(t, "b", s.Peek(3).Text)
	require.Equal(t, "b", s.Peek(3).Text)
	require.Equal(t, current, s.Current())
	require.Equal(t, 6, s.Pos())

	require.Equal(t, EOF, s.Peek(100).Kind)
	require.Equal(t, "a", s.Advance().Text)
}

func TestPeekInsideVersionComment(t *testing.T) {
	s := NewScanner("/*!50000 a */ * b")
	require.Equal(t, "a", s.Advance().Text)
	// The "*/" ahead closes the comment only once.
	require.Equal(t, MultOperator, s.Peek(1).Kind)
	require.Equal(t, MultOperator, s.Peek(1).Kind)
	require.Equal(t, MultOperator, s.Advance().Kind)
	require.Equal(t, "b", s.Advance().Text)
}

var propertyInputs = []string{
	"",
	"SELECT 1",
	"SELECT a, b FROM t WHERE x <=> 1 AND y->>'$.k' = 'It''s' -- done\n;",
	"/*!80000 SELECT */ /*!99999 hidden */ /* plain */ # pound\n 1.5e3 .5 0x1F 0b01",
	"INSERT INTO `t``x` VALUES (_utf8mb4'a\\'b', \"q\"\"q\", @v := @@global.x)",
	"'unterminated \\",
	"/* unterminated",
	"a||b&&c<<d>>e!=f<>g",
	"\x00\xff\xfe[]$\\N\\",
	"-- \n--x\n--",
}

func randomInputs(n int) []string {
	r := rand.New(rand.NewPCG(1, 2))
	alphabet := []byte("ab1 .'\"`\\-*/!#<>=|&@_\n\t(),;eE+x0\xc3\xa9")
	inputs := make([]string, 0, n)
	for iter := 0; iter < n; iter++ {
		b := make([]byte, r.IntN(40))
		for i := range b {
			if r.IntN(10) == 0 {
				b[i] = byte(r.IntN(256))
			} else {
				b[i] = alphabet[r.IntN(len(alphabet))]
			}
		}
		inputs = append(inputs, string(b))
	}
	return inputs
}

func allPropertyInputs() []string {
	return append(append([]string{}, propertyInputs...), randomInputs(500)...)
}

func TestTotality(t *testing.T) {
	for _, input := range allPropertyInputs() {
		s := NewScanner(input)
		steps := 0
		for {
			before := s.Pos()
			tok := s.Advance()
			if tok.IsEOF() {
				require.Equal(t, len(input), tok.Offset)
				break
			}
			require.Greaterf(t, s.Pos(), before, "input %q", input)
			steps++
			require.LessOrEqualf(t, steps, len(input), "input %q", input)
		}
		for iter := 0; iter < 2; iter++ {
			require.Equal(t, EOF, s.Advance().Kind)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	modes := []SQLMode{ModeNone, ModeNoBackslashEscapes | ModePipesAsConcat}
	for _, input := range allPropertyInputs() {
		for _, mode := range modes {
			var sb strings.Builder
			offset := 0
			for _, tok := range TokenizeAll(input, WithSQLMode(mode)) {
				require.Equal(t, offset, tok.Offset)
				require.NotEmpty(t, tok.Text)
				sb.WriteString(tok.Text)
				offset = tok.End()
			}
			require.Equal(t, input, sb.String())
		}
	}
}

func TestPeekNonInterference(t *testing.T) {
	for _, input := range allPropertyInputs() {
		var expected []Token
		plain := NewScanner(input)
		for iter := 0; iter < 8; iter++ {
			expected = append(expected, plain.Advance())
		}

		for k := 1; k <= 8; k++ {
			s := NewScanner(input)
			for iter := 0; iter < 3; iter++ {
				for j := 1; j <= k; j++ {
					require.Equal(t, expected[j-1], s.Peek(j))
				}
			}
			for j := 0; j < k; j++ {
				require.Equalf(t, expected[j], s.Advance(), "input %q, k %d", input, k)
			}
		}
	}
}
